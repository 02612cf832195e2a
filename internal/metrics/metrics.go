// Package metrics exposes Prometheus counters for demo sessions served over
// SSH. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mini2d"

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	runs           *prometheus.CounterVec
	ticks          *prometheus.CounterVec
	collisions     *prometheus.CounterVec
	stepSeconds    *prometheus.HistogramVec
}

// New creates and registers the collectors, plus the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		sessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "SSH sessions accepted since start.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Demo runs finished.",
		}, []string{"demo"}),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks stepped.",
		}, []string{"demo"}),
		collisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collisions_total",
			Help:      "Collision events resolved by demos.",
		}, []string{"demo"}),
		stepSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time of one simulation step.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"demo"}),
	}

	m.registry.MustRegister(
		m.sessionsActive, m.sessionsTotal, m.runs, m.ticks, m.collisions, m.stepSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SessionStarted counts a new connected session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
	m.sessionsTotal.Inc()
}

// SessionEnded marks a session as disconnected.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// ObserveStep records one simulation step and the collisions it added.
func (m *Metrics) ObserveStep(demo string, took time.Duration, collisions int) {
	if m == nil {
		return
	}
	m.ticks.WithLabelValues(demo).Inc()
	m.stepSeconds.WithLabelValues(demo).Observe(took.Seconds())
	if collisions > 0 {
		m.collisions.WithLabelValues(demo).Add(float64(collisions))
	}
}

// RunFinished counts a completed demo run.
func (m *Metrics) RunFinished(demo string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(demo).Inc()
}
