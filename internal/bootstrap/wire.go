//go:build wireinject

package bootstrap

import (
	"context"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideHTTPClient,
	ProvideFetchers,
	ProvideWriter,
	ProvideRedisClient,
	ProvideCycleGuard,
	ProvideStatusServer,
	ProvideCycle,
	ProvidePoller,
)

// Worker injector: builds *WorkerApp + Cleanup
func InitWorker(ctx context.Context) (*WorkerApp, func(), error) {
	wire.Build(
		infraSet,
		ProvideWorkerApp,
	)
	return nil, nil, nil
}
