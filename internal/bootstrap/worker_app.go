package bootstrap

import (
	"context"

	"cryptostatus/internal/application"
	"cryptostatus/internal/config"
	httpserver "cryptostatus/internal/infrastructure/http"
	"cryptostatus/internal/infrastructure/worker"

	"go.uber.org/zap"
)

// WorkerApp is the poller plus the optional status server.
type WorkerApp struct {
	Poller     application.Worker
	Status     *httpserver.Server
	StatusAddr string
	Log        *zap.Logger
}

func ProvideWorkerApp(cfg config.Config, p *worker.Poller, status *httpserver.Server, log *zap.Logger) *WorkerApp {
	return &WorkerApp{Poller: p, Status: status, StatusAddr: cfg.StatusAddr, Log: log}
}

// Run blocks in the poller. The status server, when configured, lives only as long as the poller.
func (a *WorkerApp) Run(ctx context.Context) error {
	log := a.Log
	if log == nil {
		log = zap.NewNop()
	}
	if a.StatusAddr == "" || a.Status == nil {
		return a.Poller.Run(ctx)
	}

	srvCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := httpserver.Run(srvCtx, a.StatusAddr, httpserver.NewRouter(a.Status), log); err != nil {
			log.Error("status_server_failed", zap.Error(err))
		}
	}()

	err := a.Poller.Run(ctx)
	cancel()
	<-done
	return err
}
