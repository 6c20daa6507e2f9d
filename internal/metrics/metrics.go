// Package metrics exports engine counters to prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ouraface"

type Metrics struct {
	messages prometheus.Counter
	groups   *prometheus.CounterVec
	refresh  *prometheus.CounterVec
	renders  prometheus.Counter
	calls    prometheus.Counter
}

// New registers the collectors on reg. A nil reg gets a private registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		messages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Inbound companion messages dispatched.",
		}),
		groups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metric_groups_total",
			Help:      "Metric groups by kind and outcome.",
		}, []string{"kind", "outcome"}),
		refresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_requests_total",
			Help:      "Outbound data requests by trigger.",
		}, []string{"trigger"}),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_passes_total",
			Help:      "Render passes run.",
		}),
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "surface_calls_total",
			Help:      "Display surface mutations issued.",
		}),
	}
	reg.MustRegister(m.messages, m.groups, m.refresh, m.renders, m.calls)
	return m
}

func (m *Metrics) MessageDispatched() {
	m.messages.Inc()
}

func (m *Metrics) GroupApplied(kind string) {
	m.groups.WithLabelValues(kind, "applied").Inc()
}

func (m *Metrics) GroupIgnored(kind string) {
	m.groups.WithLabelValues(kind, "ignored").Inc()
}

func (m *Metrics) RefreshRequested(trigger string) {
	m.refresh.WithLabelValues(trigger).Inc()
}

func (m *Metrics) Rendered(surfaceCalls int) {
	m.renders.Inc()
	m.calls.Add(float64(surfaceCalls))
}

// Handler serves the registry in the prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
