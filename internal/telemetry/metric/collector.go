// Package metric provides Prometheus metrics for Calculon.
package metric

import "github.com/prometheus/client_golang/prometheus"

// ValueCollector reports the current value of the shared cell at scrape time.
type ValueCollector struct {
	desc *prometheus.Desc
	read func() float64
}

// NewValueCollector creates a collector that calls read on every scrape.
func NewValueCollector(read func() float64) *ValueCollector {
	return &ValueCollector{
		desc: prometheus.NewDesc(
			"calculon_value",
			"Current value of the shared cell.",
			nil, nil,
		),
		read: read,
	}
}

// Describe implements prometheus.Collector.
func (c *ValueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *ValueCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, c.read())
}
