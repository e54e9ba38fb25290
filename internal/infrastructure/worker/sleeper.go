package worker

import (
	"context"
	"time"

	"cryptostatus/internal/application"
)

var _ application.Sleeper = TimerSleeper{}

type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
