// Package metrics exposes prometheus instrumentation for the advisor operations.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/udisondev/buildcraft/internal/model"
)

const namespace = "buildcraft"

// Outcome labels.
const (
	OutcomeOK            = "ok"
	OutcomeFormat        = "format_error"
	OutcomeConfiguration = "configuration_error"
	OutcomeInvalid       = "invalid_value"
	OutcomeError         = "error"
)

// Metrics holds the advisor collectors. A nil *Metrics records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	candidates prometheus.Histogram
	unresolved *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Advisor operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Advisor operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"operation"}),
		candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_candidates",
			Help:      "Candidates returned per upgrade search.",
			Buckets:   prometheus.LinearBuckets(1, 5, 10),
		}),
		unresolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_unresolved_total",
			Help:      "Trait and skill ids dropped while resolving build codes.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.operations, m.duration, m.candidates, m.unresolved)
	return m
}

// Observe records one operation finished with err.
func (m *Metrics) Observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Candidates records the size of a search result.
func (m *Metrics) Candidates(n int) {
	if m == nil {
		return
	}
	m.candidates.Observe(float64(n))
}

// Unresolved records dropped trait and skill ids of one decode.
func (m *Metrics) Unresolved(traits, skills int) {
	if m == nil {
		return
	}
	if traits > 0 {
		m.unresolved.WithLabelValues("trait").Add(float64(traits))
	}
	if skills > 0 {
		m.unresolved.WithLabelValues("skill").Add(float64(skills))
	}
}

// Outcome maps an error to its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, model.ErrFormat):
		return OutcomeFormat
	case errors.Is(err, model.ErrConfiguration):
		return OutcomeConfiguration
	case errors.Is(err, model.ErrInvalidValue):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// Handler serves the collectors gathered from g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
