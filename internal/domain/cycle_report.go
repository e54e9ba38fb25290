package domain

import "time"

// CycleReport summarizes one fetch/format/write pass.
type CycleReport struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	PriceOutcome Outcome   `json:"price_outcome,omitempty"`
	NewsOutcome  Outcome   `json:"news_outcome,omitempty"`
	Written      bool      `json:"written"`
	Skipped      bool      `json:"skipped"`
	Error        string    `json:"error,omitempty"`
}
