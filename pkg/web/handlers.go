package web

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"

	"github.com/techsavvyrc/shopfront/pkg/middleware"
)

type pageData struct {
	Service string
	Amount  string
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	s.logger.WithContext(r.Context()).Info("Home page accessed")
	return s.renderPage("index.html", pageData{Service: s.serviceName})
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	s.logger.WithContext(r.Context()).Info("Checkout page accessed")
	return s.renderPage("checkout.html", pageData{Service: s.serviceName})
}

// purchase simulates a business transaction. The ?error=true flag makes the
// handler fail so the full error pipeline (metrics, logs, generic 500) can
// be exercised from a browser or load generator.
func (s *Server) purchase(w http.ResponseWriter, r *http.Request) (*middleware.Result, error) {
	ctx := r.Context()

	if r.URL.Query().Get("error") == "true" {
		s.logger.WithContext(ctx).Error("Simulated purchase error triggered")
		s.metrics.PurchasesTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("simulated error for observability testing")
	}

	_, span := s.tracer.Start(ctx, "calculate_purchase_amount")
	amount := math.Round((10.0+rand.Float64()*90.0)*100) / 100
	span.End()

	s.metrics.PurchasesTotal.WithLabelValues("completed").Inc()
	s.metrics.PurchaseAmountDollars.Observe(amount)
	s.logger.WithContext(ctx).Infof("Purchase completed successfully: $%.2f", amount)

	return s.renderPage("thankyou.html", pageData{
		Service: s.serviceName,
		Amount:  fmt.Sprintf("%.2f", amount),
	})
}

func (s *Server) renderPage(name string, data pageData) (*middleware.Result, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return &middleware.Result{
		Header: http.Header{"Content-Type": []string{"text/html; charset=utf-8"}},
		Body:   buf.Bytes(),
	}, nil
}
