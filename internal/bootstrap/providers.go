package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"cryptostatus/internal/application"
	"cryptostatus/internal/config"
	infraconfig "cryptostatus/internal/infrastructure/config"
	"cryptostatus/internal/infrastructure/document"
	httpserver "cryptostatus/internal/infrastructure/http"
	"cryptostatus/internal/infrastructure/httpx"
	"cryptostatus/internal/infrastructure/logx"
	"cryptostatus/internal/infrastructure/provider"
	redisstore "cryptostatus/internal/infrastructure/redis"
	"cryptostatus/internal/infrastructure/worker"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrUnknownProvider = errors.New("unknown PROVIDER")

// fakePrice is what PROVIDER=fake reports for every field that carries a price.
const fakePrice = 65000.0

type Fetchers struct {
	Prices application.PriceFetcher
	News   application.NewsFetcher
}

func ProvideLogger() *zap.Logger { return logx.Named("worker") }

func ProvideConfig() config.Config { return config.Load() }

// ProvideHTTPClient builds the shared client. A zero RequestTimeout means no client timeout.
func ProvideHTTPClient(cfg config.Config) *httpx.Client {
	return httpx.New(&http.Client{Timeout: cfg.RequestTimeout})
}

func ProvideFetchers(cfg config.Config, client *httpx.Client) (Fetchers, error) {
	switch cfg.Provider {
	case "ccdata":
		return Fetchers{
			Prices: &provider.CCDataPriceFetcher{
				BaseURL:    cfg.PriceAPIBase,
				Market:     cfg.Market,
				Instrument: cfg.Instrument,
				APIKey:     cfg.APIKey,
				Client:     client,
			},
			News: &provider.CCDataNewsFetcher{
				BaseURL:    cfg.NewsAPIBase,
				Categories: cfg.NewsCategories,
				APIKey:     cfg.APIKey,
				Client:     client,
			},
		}, nil
	case "fake":
		f := provider.NewFake(cfg.Instrument, fakePrice)
		return Fetchers{Prices: f, News: f}, nil
	default:
		return Fetchers{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func ProvideWriter(cfg config.Config) application.DocumentWriter {
	return document.NewFileWriter(cfg.OutputPath)
}

// ProvideRedisClient returns a nil client unless CYCLE_GUARD=redis.
func ProvideRedisClient(cfg config.Config) (*redis.Client, func(), error) {
	if cfg.CycleGuard != "redis" {
		return nil, func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return client, func() { _ = client.Close() }, nil
}

// ProvideCycleGuard waits for Redis to answer PING before handing out the store.
func ProvideCycleGuard(ctx context.Context, client *redis.Client, cfg config.Config, log *zap.Logger) (application.CycleGuard, error) {
	if client == nil {
		return application.NoopGuard{}, nil
	}
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 1 * time.Second
	exp.MaxElapsedTime = infraconfig.DefaultGuardPingWindow

	op := func() error { return client.Ping(ctx).Err() }
	notify := func(err error, wait time.Duration) {
		log.Warn("redis_ping_retry", zap.Error(err), zap.Duration("wait", wait))
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(exp, ctx), notify); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info("cycle_guard_enabled", zap.String("addr", cfg.RedisAddr))
	return redisstore.New(client, cfg.PollInterval), nil
}

func ProvideStatusServer(cfg config.Config) *httpserver.Server {
	return httpserver.NewServer(cfg.OutputPath, 2*cfg.PollInterval)
}

func ProvideCycle(cfg config.Config, f Fetchers, w application.DocumentWriter, g application.CycleGuard, log *zap.Logger) *application.Cycle {
	return application.NewCycle(f.Prices, f.News, w,
		application.WithGuard(g, cfg.Instrument, cfg.PollInterval),
		application.WithLogger(log.With(zap.String("instrument", cfg.Instrument))),
		application.WithConsole(os.Stdout, filepath.Base(cfg.OutputPath)),
	)
}

func ProvidePoller(cfg config.Config, c *application.Cycle, status *httpserver.Server, log *zap.Logger) *worker.Poller {
	return &worker.Poller{
		Cycle:    c,
		Interval: cfg.PollInterval,
		Recorder: status,
		Log:      log,
	}
}
