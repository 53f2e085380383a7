// Package prometheus exports multivec storage metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, err := mvprom.New(reg, "myapp")
//	...
//	v := multivec.NewVec3[uint32, float32, uint8](multivec.WithMetricsCollector(c))
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/multivec"
)

var _ multivec.MetricsCollector = (*Collector)(nil)

// Collector implements multivec.MetricsCollector with Prometheus metrics.
// It may be shared by vectors on different goroutines.
type Collector struct {
	grows         prometheus.Counter
	frees         prometheus.Counter
	reservedBytes prometheus.Gauge
	grownBytes    prometheus.Counter
	capacity      prometheus.Histogram
}

// New creates a Collector whose metric names start with namespace and
// registers it with reg. A nil reg skips registration.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multivec_grows_total",
			Help:      "Total number of column buffer reallocations",
		}),
		frees: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multivec_frees_total",
			Help:      "Total number of column buffer releases",
		}),
		reservedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "multivec_reserved_bytes",
			Help:      "Bytes currently held by column buffers",
		}),
		grownBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multivec_grown_bytes_total",
			Help:      "Total bytes added to column buffers by growth",
		}),
		capacity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "multivec_grow_capacity_rows",
			Help:      "Row capacity reached by each growth",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}

	if reg != nil {
		for _, m := range c.collectors() {
			if err := reg.Register(m); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer, namespace string) *Collector {
	c, err := New(reg, namespace)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.grows, c.frees, c.reservedBytes, c.grownBytes, c.capacity}
}

// RecordGrow implements multivec.MetricsCollector.
func (c *Collector) RecordGrow(_, newCap int, added int64) {
	c.grows.Inc()
	c.grownBytes.Add(float64(added))
	c.reservedBytes.Add(float64(added))
	c.capacity.Observe(float64(newCap))
}

// RecordFree implements multivec.MetricsCollector.
func (c *Collector) RecordFree(_ int, released int64) {
	c.frees.Inc()
	c.reservedBytes.Sub(float64(released))
}
