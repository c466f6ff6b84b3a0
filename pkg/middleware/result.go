package middleware

import "net/http"

// Result is the successful outcome of a route handler. A zero Status means
// the handler did not choose one and classifies as 200. When Written is set
// the handler already sent the response itself and Status is kept only for
// classification.
type Result struct {
	Status  int
	Header  http.Header
	Body    []byte
	Written bool
}

// Handler is a route handler returning an explicit outcome: a Result on
// success or an error on failure. Status extraction over this closed set of
// variants is a total match, so classification can never itself fail.
type Handler func(http.ResponseWriter, *http.Request) (*Result, error)

// StatusOf classifies a handler outcome into an HTTP status code.
// An error classifies as 500 regardless of its type. A nil result or a
// result without an explicit status classifies as 200.
func StatusOf(res *Result, err error) int {
	if err != nil {
		return http.StatusInternalServerError
	}
	if res == nil || res.Status == 0 {
		return http.StatusOK
	}
	return res.Status
}

// statusRecorder captures the status code written by a plain http.Handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Raw adapts a plain http.Handler (e.g. a file server) into a Handler so it
// can run under Observe. The response is written by the wrapped handler; the
// returned Result only carries the captured status for classification.
func Raw(next http.Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) (*Result, error) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		return &Result{Status: rec.status, Written: true}, nil
	}
}
