// Package storage persists evaluation history for the formula service.
// Saves are best-effort: callers log failures and move on.
package storage

import (
	"context"
	"time"
)

// Evaluation records one formula evaluation: the inputs as received, and
// the outcome on whichever channel it landed (a number, a degenerate
// NaN/Inf reported as text, or "no solution").
type Evaluation struct {
	Formula       string         `json:"formula"`
	Inputs        map[string]any `json:"inputs"`
	Result        *float64       `json:"result,omitempty"`
	Degenerate    string         `json:"degenerate,omitempty"`
	NoSolution    bool           `json:"no_solution,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	EvaluatedAt   time.Time      `json:"evaluated_at"`
}

// HistoryStore stores recent evaluations.
type HistoryStore interface {
	// Save appends an evaluation, evicting the oldest entries beyond the
	// store's capacity.
	Save(ctx context.Context, ev Evaluation) error

	// Recent returns up to limit evaluations, newest first.
	Recent(ctx context.Context, limit int) ([]Evaluation, error)

	// Close releases any underlying resources.
	Close() error
}
