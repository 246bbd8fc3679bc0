package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/config"

	"go.uber.org/zap"
)

const drainTimeout = 10 * time.Second

// Serve runs handler until ctx is done, then drains in-flight requests.
// A listen failure is returned immediately.
func Serve(ctx context.Context, handler http.Handler, cfg config.ServerConfig, sink audit.Sink, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	bg := context.WithoutCancel(ctx)
	sink.Log(bg, audit.Entry{
		Action:  "SERVER_SHUTDOWN",
		Message: "api server draining",
		Meta:    map[string]any{"cause": context.Cause(ctx).Error()},
	})

	shutdownCtx, cancel := context.WithTimeout(bg, drainTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
