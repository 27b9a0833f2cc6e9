package handle

import "github.com/prometheus/client_golang/prometheus"

// Collector exports a registry's counters as prometheus metrics.
type Collector struct {
	registry *Registry
	live     *prometheus.Desc
	bytes    *prometheus.Desc
	acquired *prometheus.Desc
	released *prometheus.Desc
}

// NewCollector returns a collector for r. Register it with a
// prometheus.Registerer to expose it.
func NewCollector(r *Registry, namespace string) *Collector {
	return &Collector{
		registry: r,
		live:     prometheus.NewDesc(prometheus.BuildFQName(namespace, "handles", "live"), "Outstanding handles.", nil, nil),
		bytes:    prometheus.NewDesc(prometheus.BuildFQName(namespace, "handles", "live_bytes"), "Capacity of outstanding handles in bytes.", nil, nil),
		acquired: prometheus.NewDesc(prometheus.BuildFQName(namespace, "handles", "acquired_total"), "Handles acquired.", nil, nil),
		released: prometheus.NewDesc(prometheus.BuildFQName(namespace, "handles", "released_total"), "Handles released.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.bytes
	ch <- c.acquired
	ch <- c.released
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.registry.Stats()
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(s.Live))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(s.Bytes))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.CounterValue, float64(s.Acquired))
	ch <- prometheus.MustNewConstMetric(c.released, prometheus.CounterValue, float64(s.Released))
}
