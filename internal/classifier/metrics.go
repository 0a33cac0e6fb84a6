package classifier

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the classifier's Prometheus collectors. A nil *Metrics is a
// valid no-op.
type Metrics struct {
	Classifications *prometheus.CounterVec
	RuleMatches     *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
	ProviderCalls   *prometheus.CounterVec
	ProviderLatency *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant_desk",
			Subsystem: "classifier",
			Name:      "classifications_total",
			Help:      "Classification results by method and answer.",
		}, []string{"method", "requires_response"}),
		RuleMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant_desk",
			Subsystem: "classifier",
			Name:      "rule_matches_total",
			Help:      "Rule family matches, including non-final ones.",
		}, []string{"family"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant_desk",
			Subsystem: "classifier",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by outcome (hit, miss, error).",
		}, []string{"outcome"}),
		ProviderCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant_desk",
			Subsystem: "classifier",
			Name:      "provider_calls_total",
			Help:      "Generative provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "assistant_desk",
			Subsystem: "classifier",
			Name:      "provider_latency_seconds",
			Help:      "Generative provider call latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
		}, []string{"provider"}),
	}
	if reg != nil {
		reg.MustRegister(m.Classifications, m.RuleMatches, m.CacheLookups, m.ProviderCalls, m.ProviderLatency)
	}
	return m
}

func (m *Metrics) observeResult(r Result) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(string(r.Method), string(r.RequiresResponse)).Inc()
}

func (m *Metrics) observeRule(family string) {
	if m == nil {
		return
	}
	m.RuleMatches.WithLabelValues(family).Inc()
}

func (m *Metrics) observeCache(outcome string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeProvider(provider, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ProviderCalls.WithLabelValues(provider, outcome).Inc()
	m.ProviderLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}
