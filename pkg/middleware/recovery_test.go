package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRecovery(t *testing.T) {
	t.Run("converts panic into generic 500", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logrus.New()
		logger.SetOutput(&buf)

		handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Internal Server Error") {
			t.Errorf("Expected generic error body, got %q", rec.Body.String())
		}
		if !strings.Contains(buf.String(), "boom") {
			t.Error("Expected panic value in log output")
		}
		if !strings.Contains(buf.String(), "stack") {
			t.Error("Expected stack trace field in log output")
		}
	})

	t.Run("passes through normal responses", func(t *testing.T) {
		logger := logrus.New()
		logger.SetOutput(&bytes.Buffer{})

		handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		if rec.Code != http.StatusTeapot {
			t.Errorf("Expected status 418, got %d", rec.Code)
		}
	})
}
