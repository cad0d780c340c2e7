package calculation

import "errors"

// Sentinel errors for the model boundary. Callers match with errors.Is; the
// engine never returns a partial result alongside one of these.
var (
	// ErrInvalidInput marks a non-finite or out-of-domain forecast scalar.
	ErrInvalidInput = errors.New("invalid forecast input")
	// ErrUnknownScenario marks a scenario identifier outside {S0, S1, S2}.
	ErrUnknownScenario = errors.New("unknown scenario")
	// ErrMalformedSeries marks a demand series that does not cover the
	// 2025-2050 horizon exactly.
	ErrMalformedSeries = errors.New("malformed demand series")
)
