package scoring

import "errors"

var (
	// ErrInsufficientData means zero usable games were supplied for a domain.
	// Non-fatal: the orchestrator skips that domain instead of failing.
	ErrInsufficientData = errors.New("insufficient game data for domain")

	// ErrInvalidInput means the raw telemetry is malformed (negative counts).
	// Fatal for the single scoring call that received it.
	ErrInvalidInput = errors.New("invalid metric input")

	// ErrNormativeDataNotFound means no reference row exists for the
	// requested domain, age group, and clinical group combination.
	ErrNormativeDataNotFound = errors.New("normative data not found")

	// ErrInsufficientInput means the executive aggregator was called with
	// no domain scores at all.
	ErrInsufficientInput = errors.New("at least one domain score is required")
)
