package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const shutdownGrace = 10 * time.Second

// serve runs the HTTP server until the process receives SIGINT or SIGTERM,
// then drains in-flight requests and releases the application's resources.
func (app *application) serve(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		// ListenAndServe never returns nil; before a shutdown was
		// requested any result, including ErrServerClosed, is a failure.
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		app.logger.Info("shutdown requested, draining requests",
			slog.Duration("grace", shutdownGrace))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := server.Shutdown(drainCtx)
	if listenErr := <-serveErr; listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
		app.logger.Error("listener exited abnormally", "error", listenErr)
	}

	app.cleanup()

	if err != nil {
		return fmt.Errorf("drain http server: %w", err)
	}
	app.logger.Info("server stopped")
	return nil
}
