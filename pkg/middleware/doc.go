// Package middleware provides the request-observability wrapping for HTTP
// handlers: path normalization for bounded metric cardinality, outcome
// classification into status codes, exactly-once metric recording on every
// exit path, panic recovery at the outer boundary, and request-ID
// propagation.
//
// # Composition
//
// Handlers return a Result (or an error) and are wrapped per route:
//
//	router.Handle("/purchase", middleware.Observe(metrics, logger, handler)).Methods("POST")
//
// The recovery boundary wraps the whole router so that a panicking handler
// is still recorded (as a 500) by Observe before the boundary logs it and
// writes the generic error response:
//
//	handler := middleware.Recovery(logger)(router)
//
// # Related Packages
//
//   - pkg/observability: metric sinks and trace-context logging
//   - pkg/web: route handlers wired through this package
package middleware
