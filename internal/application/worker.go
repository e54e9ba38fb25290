package application

import (
	"context"

	"cryptostatus/internal/domain"
)

// Worker runs until the context is canceled or a cycle fails.
type Worker interface {
	Run(ctx context.Context) error
}

// CycleRunner performs one fetch/format/write pass.
type CycleRunner interface {
	Run(ctx context.Context) (domain.CycleReport, error)
}
