package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/techsavvyrc/shopfront/pkg/config"
	"github.com/techsavvyrc/shopfront/pkg/observability"
	"github.com/techsavvyrc/shopfront/pkg/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := observability.NewLogger(observability.LoggerConfig{
		Level:   cfg.Observability.LogLevel,
		File:    cfg.Observability.LogFile,
		Service: cfg.Observability.ServiceName,
	})

	ctx := context.Background()
	providers, err := observability.InitOTel(ctx, observability.OTelConfig{
		Enabled:        cfg.Observability.OTelEnabled,
		Endpoint:       cfg.Observability.OTelEndpoint,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Insecure:       cfg.Observability.OTelInsecure,
	}, logger)
	if err != nil {
		// Tracing is best-effort; the service keeps serving without it.
		logger.WithError(err).Error("Tracing initialization failed, continuing without tracing")
		providers = nil
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	server, err := web.NewServer(logger, metrics, registry, cfg.Observability.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	appServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	adminMux := http.NewServeMux()
	observability.RegisterHealthRoutes(adminMux, observability.NewHealthChecker(cfg.Observability.ServiceVersion))
	observability.RegisterMetricsEndpoint(adminMux, registry)
	adminServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.AdminPort),
		Handler:      adminMux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := observability.NewShutdownManager(logger, cfg.Server.ShutdownTimeout, appServer, adminServer)
	if providers != nil {
		shutdown.RegisterShutdownFunc(func(ctx context.Context) error {
			return observability.ShutdownOTel(ctx, providers, logger)
		})
	}

	var g errgroup.Group
	g.Go(func() error {
		logger.Infof("Starting %s on %s", cfg.Observability.ServiceName, appServer.Addr)
		if err := appServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Infof("Starting admin server on %s", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("admin server failed: %w", err)
		}
		return nil
	})
	g.Go(shutdown.WaitForShutdown)

	return g.Wait()
}
