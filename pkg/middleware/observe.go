package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/techsavvyrc/shopfront/pkg/observability"
)

// Observe wraps a route handler with request instrumentation. For every
// invocation it:
//
//  1. Computes the normalized metric label before calling the handler.
//  2. Times the handler with the monotonic clock.
//  3. Classifies the outcome into a status code. The status starts as 500
//     so a panic leaves it there; it is refined only on a completed return.
//  4. Records one histogram observation and one summary observation keyed
//     by path, and one counter increment keyed by (method, path, status).
//
// Recording happens in a deferred block so it runs exactly once on every
// exit path: normal return, error return, or panic. A panic is never
// swallowed here; it unwinds to the Recovery boundary after the metrics are
// recorded. An error return is logged with trace context and answered with
// a generic 500.
func Observe(m *observability.Metrics, logger *logrus.Logger, next Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := NormalizePath(r.URL.Path)
		method := r.Method
		start := time.Now()

		// Assume failure until the handler demonstrably completed.
		status := http.StatusInternalServerError

		defer func() {
			duration := time.Since(start).Seconds()
			m.HTTPRequestDurationHistogram.WithLabelValues(path).Observe(duration)
			m.HTTPRequestDurationSummary.WithLabelValues(path).Observe(duration)
			m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		}()

		res, err := next(w, r)
		status = StatusOf(res, err)

		if err != nil {
			logger.WithContext(r.Context()).WithError(err).Error("Request handler failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeResult(w, res, status)
	})
}

// writeResult sends a handler's Result to the client unless the handler
// already wrote the response itself.
func writeResult(w http.ResponseWriter, res *Result, status int) {
	if res != nil && res.Written {
		return
	}
	if res != nil {
		for key, values := range res.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
	}
	w.WriteHeader(status)
	if res != nil && len(res.Body) > 0 {
		w.Write(res.Body) //nolint:errcheck // client gone, nothing to do
	}
}
