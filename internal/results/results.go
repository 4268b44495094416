// Package results delivers finished sessions to result stores and reports the
// ranking position back to the host.
package results

import (
	"context"
	"errors"

	"github.com/vovakirdan/match-league/internal/engine"
)

// ErrRejected is returned when a store refuses a result.
var ErrRejected = errors.New("results: rejected")

// Receipt is what a store returns for a saved result.
type Receipt struct {
	ResultID int64
	Ranking  int // 1-based position among all saved results, 0 when unknown
	Message  string
}

// Submitter persists a finished session.
type Submitter interface {
	Submit(ctx context.Context, r engine.Result) (Receipt, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, r engine.Result) (Receipt, error)

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, r engine.Result) (Receipt, error) {
	return f(ctx, r)
}

// Multi submits to every submitter in order. The receipt comes from the first
// one that succeeds; the error joins every failure.
type Multi []Submitter

// Submit implements Submitter.
func (m Multi) Submit(ctx context.Context, r engine.Result) (Receipt, error) {
	var (
		receipt Receipt
		got     bool
		errs    []error
	)
	for _, s := range m {
		rc, err := s.Submit(ctx, r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !got {
			receipt, got = rc, true
		}
	}
	return receipt, errors.Join(errs...)
}
