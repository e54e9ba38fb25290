package worker

import (
	"context"
	"time"

	"cryptostatus/internal/application"
	infraconfig "cryptostatus/internal/infrastructure/config"

	"go.uber.org/zap"
)

var _ application.Worker = (*Poller)(nil)

// Poller has a single state: run a cycle, sleep Interval, repeat. There is no jitter or drift correction.
type Poller struct {
	Cycle    application.CycleRunner
	Interval time.Duration
	Sleeper  application.Sleeper
	Recorder application.CycleRecorder
	Log      *zap.Logger
}

// Run returns nil once ctx is canceled and the first cycle error otherwise.
func (p *Poller) Run(ctx context.Context) error {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	if p.Interval <= 0 {
		p.Interval = infraconfig.DefaultPollInterval
	}
	if p.Sleeper == nil {
		p.Sleeper = TimerSleeper{}
	}
	if p.Recorder == nil {
		p.Recorder = application.NoopRecorder{}
	}

	log.Info("poller_started", zap.Duration("interval", p.Interval))
	for {
		rep, err := p.Cycle.Run(ctx)
		p.Recorder.Record(rep)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("poller_stopped")
				return nil
			}
			log.Error("cycle_failed", zap.String("cycle_id", rep.ID), zap.Error(err))
			return err
		}
		if err := p.Sleeper.Sleep(ctx, p.Interval); err != nil {
			log.Info("poller_stopped")
			return nil
		}
	}
}
