package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics; the path label is always a normalized label, never a
	// raw request path.
	HTTPRequestsTotal            *prometheus.CounterVec
	HTTPRequestDurationHistogram *prometheus.HistogramVec
	HTTPRequestDurationSummary   *prometheus.SummaryVec

	// Business metrics
	PurchasesTotal        *prometheus.CounterVec
	PurchaseAmountDollars prometheus.Histogram
}

// NewMetrics creates and registers all Prometheus metrics. Registering
// twice on the same registry panics, which surfaces wiring mistakes at
// startup rather than at scrape time.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests received",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDurationHistogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds_histogram",
				Help:    "Histogram of request latency distribution in seconds",
				Buckets: []float64{0.1, 0.3, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"path"},
		),
		HTTPRequestDurationSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "http_request_duration_seconds_summary",
				Help:       "Request latency quantile summary in seconds",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{"path"},
		),

		PurchasesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopfront_purchases_total",
				Help: "Total number of purchase attempts",
			},
			[]string{"status"},
		),
		PurchaseAmountDollars: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shopfront_purchase_amount_dollars",
				Help:    "Distribution of purchase amounts in dollars",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationHistogram,
		m.HTTPRequestDurationSummary,
		m.PurchasesTotal,
		m.PurchaseAmountDollars,
	)

	return m
}

// MetricsHandler returns the Prometheus exposition handler for a registry.
func MetricsHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// RegisterMetricsEndpoint registers the /metrics endpoint
func RegisterMetricsEndpoint(mux *http.ServeMux, registry *prometheus.Registry) {
	mux.Handle("/metrics", MetricsHandler(registry))
}
