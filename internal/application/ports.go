package application

import (
	"context"
	"time"

	"cryptostatus/internal/domain"
)

type PriceFetcher interface {
	FetchPrice(ctx context.Context) (domain.PriceResult, error)
}

type NewsFetcher interface {
	FetchNews(ctx context.Context) (domain.NewsResult, error)
}

type DocumentWriter interface {
	Write(ctx context.Context, content string) error
}

// CycleGuard hands out at most one lease per key.
type CycleGuard interface {
	// TryReserve returns true if key was absent and is now reserved.
	TryReserve(ctx context.Context, key string) (bool, error)
}

// CycleRecorder receives the report of every finished cycle.
type CycleRecorder interface {
	Record(r domain.CycleReport)
}

type Clock interface {
	Now() time.Time
}

type Sleeper interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type IDGen interface {
	NewID() string
}
