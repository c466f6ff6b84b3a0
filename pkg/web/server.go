package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/techsavvyrc/shopfront/pkg/middleware"
	"github.com/techsavvyrc/shopfront/pkg/observability"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server is the HTTP surface of the shopfront service.
type Server struct {
	router      *mux.Router
	logger      *logrus.Logger
	metrics     *observability.Metrics
	registry    *prometheus.Registry
	tracer      trace.Tracer
	templates   *template.Template
	serviceName string
}

// NewServer creates the server and registers all routes.
func NewServer(logger *logrus.Logger, metrics *observability.Metrics, registry *prometheus.Registry, serviceName string) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:      mux.NewRouter(),
		logger:      logger,
		metrics:     metrics,
		registry:    registry,
		tracer:      otel.Tracer("shopfront/web"),
		templates:   templates,
		serviceName: serviceName,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	observe := func(h middleware.Handler) http.Handler {
		return middleware.Observe(s.metrics, s.logger, h)
	}

	s.router.Handle("/", observe(s.home)).Methods("GET")
	s.router.Handle("/checkout", observe(s.checkout)).Methods("GET")
	s.router.Handle("/purchase", observe(s.purchase)).Methods("POST")

	// Counted but not latency-observed; a scrape should not skew the
	// latency distributions it reports.
	s.router.Handle("/metrics", s.metricsEndpoint()).Methods("GET")

	// The embedded FS keeps the "static/" prefix, so the file server maps
	// /static/app.css straight onto it.
	s.router.PathPrefix("/static/").Handler(observe(middleware.Raw(http.FileServer(http.FS(staticFS)))))
}

// Handler returns the fully wrapped handler chain. The tracing handler is
// outermost so every inner layer sees an active span context; the recovery
// boundary sits outside the router so panics are caught only after the
// per-route instrumentation has recorded them.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = middleware.Recovery(s.logger)(h)
	h = middleware.RequestID()(h)
	h = otelhttp.NewHandler(h, s.serviceName)
	return h
}

func (s *Server) metricsEndpoint() http.Handler {
	exposition := observability.MetricsHandler(s.registry)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.HTTPRequestsTotal.WithLabelValues(r.Method, middleware.NormalizePath(r.URL.Path), "200").Inc()
		exposition.ServeHTTP(w, r)
	})
}
