// Package observability provides trace-correlated logging, Prometheus
// metrics, and OpenTelemetry tracing for the shopfront service.
//
// # Logging
//
// NewLogger builds a logrus logger whose formatter stamps every record with
// the active trace and span identifiers (or "N/A" when no span is active):
//
//	logger := observability.NewLogger(observability.LoggerConfig{Level: "info"})
//	logger.WithContext(r.Context()).Info("Checkout page accessed")
//
// # Prometheus Metrics
//
// Metrics are registered on a private registry and exposed through the
// standard promhttp handler:
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/", "200").Inc()
//
// # OpenTelemetry
//
// InitOTel wires OTLP/gRPC exporters for traces and metrics. A collector
// that cannot be reached is a startup warning, not a fatal error; the
// service keeps running without tracing.
//
// # Related Packages
//
//   - pkg/middleware: request instrumentation built on these sinks
//   - pkg/config: observability configuration
package observability
