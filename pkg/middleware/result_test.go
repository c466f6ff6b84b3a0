package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		res  *Result
		err  error
		want int
	}{
		{"error classifies as 500", nil, errors.New("boom"), http.StatusInternalServerError},
		{"error wins over result status", &Result{Status: 201}, errors.New("boom"), http.StatusInternalServerError},
		{"nil result defaults to 200", nil, nil, http.StatusOK},
		{"absent status defaults to 200", &Result{Body: []byte("ok")}, nil, http.StatusOK},
		{"explicit status is kept", &Result{Status: 201}, nil, 201},
		{"explicit error status is kept", &Result{Status: 404}, nil, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.res, tt.err); got != tt.want {
				t.Errorf("StatusOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRaw(t *testing.T) {
	t.Run("captures written status", func(t *testing.T) {
		handler := Raw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		rec := httptest.NewRecorder()
		res, err := handler(rec, httptest.NewRequest("GET", "/static/missing.css", nil))

		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if res.Status != http.StatusNotFound {
			t.Errorf("Expected captured status 404, got %d", res.Status)
		}
		if !res.Written {
			t.Error("Expected Written to be set")
		}
	})

	t.Run("defaults to 200 when nothing written", func(t *testing.T) {
		handler := Raw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok")) //nolint:errcheck
		}))

		rec := httptest.NewRecorder()
		res, err := handler(rec, httptest.NewRequest("GET", "/static/app.css", nil))

		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if res.Status != http.StatusOK {
			t.Errorf("Expected captured status 200, got %d", res.Status)
		}
	})
}
