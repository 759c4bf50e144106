package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"Rockbolt/internal/config"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Run serves until ctx is cancelled, then drains open connections.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	limiter := NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(log, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLS()))
		var err error
		if cfg.TLS() {
			err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, closing active connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
