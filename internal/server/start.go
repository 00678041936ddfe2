package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

// Start serves until ctx is canceled, then shuts down gracefully. Idle portal
// sessions are swept in the background while the server runs.
func (s *Server) Start(ctx context.Context, addr string) error {
	tlsCfg, err := buildTLS(ctx, s.Cfg.GetTLS(), s.logger)
	if err != nil {
		return err
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx, sweepInterval)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.E,
		TLSConfig:         tlsCfg,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", addr, "tls", tlsCfg != nil)
		// echo wraps its listener in TLS when srv.TLSConfig is set.
		errCh <- s.E.StartServer(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.sessions.Shutdown()
	return nil
}
