package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts cache activity per resource family. All methods are safe
// on a nil receiver so instrumentation stays optional.
type Metrics struct {
	fetches       *prometheus.CounterVec
	mutations     *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewMetrics creates and registers the cache metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tara_cache_fetches_total",
			Help: "Snapshot fetches per resource family and result.",
		}, []string{"family", "result"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tara_cache_mutations_total",
			Help: "Mutations per resource family and result.",
		}, []string{"family", "result"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tara_cache_invalidations_total",
			Help: "Snapshot invalidations per resource family.",
		}, []string{"family"}),
	}
	reg.MustRegister(m.fetches, m.mutations, m.invalidations)
	return m
}

func (m *Metrics) fetchDone(family, result string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(family, result).Inc()
}

func (m *Metrics) mutationDone(family, result string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(family, result).Inc()
}

func (m *Metrics) invalidated(family string) {
	if m == nil {
		return
	}
	m.invalidations.WithLabelValues(family).Inc()
}
