// Package metrics exports generation metrics in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

const namespace = "mom"

// Recorder records one observation per generation attempt
type Recorder struct {
	registry *prometheus.Registry

	generations *prometheus.CounterVec
	tokens      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewRecorder creates a recorder on its own registry. Buckets default to
// values suited to LLM round trips.
func NewRecorder(buckets []float64) *Recorder {
	if len(buckets) == 0 {
		buckets = []float64{0.5, 1, 2, 5, 10, 20, 30, 60}
	}

	r := &Recorder{registry: prometheus.NewRegistry()}

	r.generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Total number of MOM generation attempts",
		},
		[]string{"outcome"},
	)

	r.tokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Total number of LLM tokens consumed",
		},
		[]string{"direction"},
	)

	r.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "MOM generation latency in seconds",
			Buckets:   buckets,
		},
		[]string{"outcome"},
	)

	r.registry.MustRegister(
		r.generations,
		r.tokens,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveGeneration records the outcome, latency and token usage of one attempt
func (r *Recorder) ObserveGeneration(outcome string, elapsed time.Duration, tokens entities.TokenUsage) {
	r.generations.WithLabelValues(outcome).Inc()
	r.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	r.tokens.WithLabelValues("input").Add(float64(tokens.Input))
	r.tokens.WithLabelValues("output").Add(float64(tokens.Output))
}

// Handler serves the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
