package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	infraconfig "cryptostatus/internal/infrastructure/config"

	"go.uber.org/zap"
)

// Run serves h on addr and blocks until ctx is done or the listener fails.
func Run(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: infraconfig.DefaultReadHeaderLimit}
	errCh := make(chan error, 1)
	go func() {
		log.Info("status_server_started", zap.String("addr", lis.Addr().String()))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	select {
	case <-ctx.Done():
		log.Info("status_server_stopping")
		shCtx, cancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
