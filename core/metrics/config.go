package metrics

import "fmt"

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
	if c.InfluxBucket == "" {
		c.InfluxBucket = "fristenkalender"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.PrometheusEnabled && c.PrometheusPort == "" {
		return fmt.Errorf("prometheus_port is required when prometheus is enabled")
	}
	if c.InfluxEnabled && (c.InfluxURL == "" || c.InfluxOrg == "") {
		return fmt.Errorf("influx_url and influx_org are required when influx is enabled")
	}
	return nil
}
