package server

import (
	"context"
	"errors"
	"net/http"

	"edurev/backend/config"
	"edurev/backend/global"
)

func NewHTTPServer(cfg config.HTTP, addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for at most
// cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.HTTP, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		global.Logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	global.Logger.Info().Msg("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
