package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hochfrequenz/fristenkalender/core/metrics"
	"github.com/hochfrequenz/fristenkalender/infra/mqtt"
)

// EnvPrefix marks environment variables that override file settings, e.g.
// FK_SERVER__ADDRESS=:9000.
const EnvPrefix = "FK_"

// Config is the application configuration, one section per component.
type Config struct {
	Calendar  CalendarConfig  `json:"calendar"`
	Generator GeneratorConfig `json:"generator"`
	Export    ExportConfig    `json:"export"`
	Metrics   metrics.Config  `json:"metrics"`
	Server    ServerConfig    `json:"server"`
	MQTT      mqtt.Config     `json:"mqtt"`
	Notify    NotifyConfig    `json:"notify"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{Generator: GeneratorConfig{Parallel: true}}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields of every section.
func (c *Config) SetDefaults() {
	c.Calendar.SetDefaults()
	c.Export.SetDefaults()
	c.Metrics.SetDefaults()
	c.Server.SetDefaults()
	c.MQTT.SetDefaults()
	c.Notify.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	validators := []struct {
		name string
		fn   func() error
	}{
		{"calendar", c.Calendar.Validate},
		{"export", c.Export.Validate},
		{"metrics", c.Metrics.Validate},
		{"server", c.Server.Validate},
		{"mqtt", c.MQTT.Validate},
		{"notify", c.Notify.Validate},
	}
	for _, v := range validators {
		if err := v.fn(); err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
	}
	return nil
}

// Load reads the configuration file at path, applies FK_ environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides; "__" separates nesting levels.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
