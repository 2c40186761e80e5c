// Package metrics defines the sink interface used to observe Fristen
// generation runs. Prometheus and InfluxDB implementations live in
// infra/metrics; NopSink is used when metrics are disabled.
package metrics
