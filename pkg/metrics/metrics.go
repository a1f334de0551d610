// Package metrics holds the prometheus collectors for the content pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "affiliate"

// Outcome labels for generation requests.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Fallback step labels.
const (
	StepImage    = "image"
	StepArticle  = "article"
	StepProducts = "products"
	StepReview   = "review"
)

type Metrics struct {
	GenerationRequests *prometheus.CounterVec
	GenerationFallback *prometheus.CounterVec
	GeneratedReviews   prometheus.Counter
	ReviewQueueDepth   *prometheus.GaugeVec
	EventBacklog       prometheus.Gauge
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction never collides.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GenerationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_requests_total",
			Help:      "Generation pipeline runs by outcome.",
		}, []string{"outcome"}),
		GenerationFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_fallbacks_total",
			Help:      "Pipeline steps that degraded to a fallback value.",
		}, []string{"step"}),
		GeneratedReviews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_reviews_total",
			Help:      "Product reviews persisted by the generation pipeline.",
		}),
		ReviewQueueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "review_queue_depth",
			Help:      "Entities currently waiting in REVIEW status.",
		}, []string{"entity"}),
		EventBacklog: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "content_events_backlog",
			Help:      "Content events waiting in the broker queue.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		}, []string{"method", "route"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.GenerationRequests,
			m.GenerationFallback,
			m.GeneratedReviews,
			m.ReviewQueueDepth,
			m.EventBacklog,
			m.HTTPRequests,
			m.HTTPDuration,
		)
	}
	return m
}

func (m *Metrics) RecordGeneration(outcome string) {
	if m == nil {
		return
	}
	m.GenerationRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordFallback(step string) {
	if m == nil {
		return
	}
	m.GenerationFallback.WithLabelValues(step).Inc()
}

func (m *Metrics) RecordGeneratedReview() {
	if m == nil {
		return
	}
	m.GeneratedReviews.Inc()
}

func (m *Metrics) SetQueueDepth(entity string, depth int64) {
	if m == nil {
		return
	}
	m.ReviewQueueDepth.WithLabelValues(entity).Set(float64(depth))
}

func (m *Metrics) SetEventBacklog(messages int) {
	if m == nil {
		return
	}
	m.EventBacklog.Set(float64(messages))
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
