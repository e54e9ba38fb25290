package application

import (
	"context"
	"time"

	"cryptostatus/internal/domain"

	"github.com/google/uuid"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type defaultIDGen struct{}

func (defaultIDGen) NewID() string { return uuid.NewString() }

// NoopGuard always grants the lease; used when no shared guard is configured.
type NoopGuard struct{}

func (NoopGuard) TryReserve(context.Context, string) (bool, error) { return true, nil }

type NoopRecorder struct{}

func (NoopRecorder) Record(domain.CycleReport) {}
