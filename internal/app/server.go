package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// httpServer is the part of *http.Server that serve drives.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully
// within timeout. A clean shutdown returns nil.
func serve(ctx context.Context, srv httpServer, timeout time.Duration, logger *slog.Logger) error {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		logger.Info("shutting down http server", slog.Duration("timeout", timeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		<-errCh
		logger.Info("http server stopped")
		return nil
	}
}
