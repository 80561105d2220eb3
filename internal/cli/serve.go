package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/gridwalk"
	httpAdapter "github.com/aretw0/gridwalk/pkg/adapters/http"
	"github.com/aretw0/gridwalk/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	Addr     string
	Fixtures string
	Metrics  bool
}

// NewServeHandler builds the HTTP handler, with a dedicated metrics registry when enabled.
func NewServeHandler(opts ServeOptions, logger *slog.Logger) (http.Handler, error) {
	loader, err := OpenLoader(opts.Fixtures)
	if err != nil {
		return nil, err
	}

	handlerOpts := []httpAdapter.Option{
		httpAdapter.WithLogger(logger),
		httpAdapter.WithVersion(gridwalk.Version),
	}

	var metrics *observability.Metrics
	if opts.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		if metrics, err = observability.NewMetrics(reg); err != nil {
			return nil, err
		}
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(reg))
	}
	handlerOpts = append(handlerOpts, httpAdapter.WithEngine(NewEngine(logger, metrics)))

	return httpAdapter.NewHandler(loader, handlerOpts...)
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, opts ServeOptions, logger *slog.Logger) error {
	handler, err := NewServeHandler(opts, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting gridwalk server", "addr", srv.Addr, "fixtures", opts.Fixtures, "metrics", opts.Metrics)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server", "reason", ShutdownReason(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("server stopped gracefully")
		return nil
	}
}
