// Package infra contains technical adapters such as the MQTT reminder
// publisher and the Prometheus and InfluxDB metric sinks. These packages
// depend only on the interfaces defined in the core packages.
package infra
