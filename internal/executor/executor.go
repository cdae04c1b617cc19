// Package executor provides the mock query execution adapter. There is no
// database underneath: results are canned tables keyed by catalog query ID,
// with a small simulated latency so the UI's loading states are observable.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownQuery is returned when no canned result exists for a query ID.
// Callers validate text against the catalog before executing, so hitting this
// normally means a stale history entry.
var ErrUnknownQuery = errors.New("no result set for query")

// Options configures an Executor.
type Options struct {
	// HistoryLimit bounds the execution log; zero means DefaultHistoryLimit.
	HistoryLimit int
	// Latency is the simulated execution delay. Zero disables the delay,
	// which tests rely on.
	Latency time.Duration
	// Now is the clock used for history timestamps; nil means time.Now.
	Now func() time.Time
}

// Executor resolves catalog query IDs to canned result sets and records every
// execution in a bounded history log.
type Executor struct {
	history *History
	latency time.Duration
	now     func() time.Time
}

// New creates an Executor.
func New(opts Options) *Executor {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Executor{
		history: NewHistory(opts.HistoryLimit),
		latency: opts.Latency,
		now:     now,
	}
}

// Execute resolves the canned result for queryID, records a history entry, and
// returns the payload with its elapsed time filled in. The context cancels the
// simulated latency, which is how in-flight requests for closed output tabs
// are abandoned.
func (e *Executor) Execute(ctx context.Context, queryText, queryID, label string) (*ResultSet, error) {
	start := e.now()

	rs, ok := resultFor(queryID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuery, queryID)
	}

	if e.latency > 0 {
		timer := time.NewTimer(e.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	e.history.Append(HistoryEntry{
		QueryText: queryText,
		QueryID:   queryID,
		Label:     label,
		RunAt:     start,
	})

	rs.Elapsed = e.now().Sub(start)
	return rs, nil
}

// History exposes the execution log for display.
func (e *Executor) History() *History {
	return e.history
}
