// Package metrics exposes operation counters and the live entry count
// over a prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes, used as the "result" label.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	live       prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numberd",
			Name:      "operations_total",
			Help:      "Store operations by type and outcome.",
		}, []string{"op", "result"}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "numberd",
			Name:      "live_entries",
			Help:      "Number of entries currently in the store.",
		}),
	}
	reg.MustRegister(m.operations, m.live)
	return m
}

// Observe counts one operation outcome. Safe on a nil receiver so callers
// can run without metrics wired.
func (m *Metrics) Observe(op, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, result).Inc()
}

// SetLive records the current store size.
func (m *Metrics) SetLive(n int) {
	if m == nil {
		return
	}
	m.live.Set(float64(n))
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
