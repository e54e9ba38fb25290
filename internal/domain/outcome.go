package domain

// Outcome classifies a single upstream fetch.
type Outcome string

const (
	OutcomeOK              Outcome = "ok"
	OutcomeUnavailable     Outcome = "upstream_unavailable"
	OutcomeUnexpectedShape Outcome = "unexpected_shape"
	// OutcomeSkipped is used for the news fetch when no price snapshot was produced.
	OutcomeSkipped Outcome = "skipped"
)
