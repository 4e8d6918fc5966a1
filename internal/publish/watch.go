package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// ErrInvalidInterval is returned when a watcher is built with a non-positive interval.
var ErrInvalidInterval = errors.New("interval must be positive")

// Watcher polls the agent monitor and publishes every successful poll.
type Watcher struct {
	Monitor   convoso.AgentMonitorClient
	Params    *convoso.AgentMonitorSearchParams
	Publisher Publisher
	Interval  time.Duration
	// Count stops the watcher after this many snapshots. Zero runs until ctx ends.
	Count  int
	Logger convoso.Logger
	now    func() time.Time
}

// Run polls until ctx is done or Count snapshots were published. A failed
// poll is logged and skipped; a failed publish stops the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	if w.Interval <= 0 {
		return ErrInvalidInterval
	}

	now := w.now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	var seq uint64

	for {
		snapshot, err := w.poll(ctx, now)

		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}

			w.warn("agent monitor poll failed", map[string]interface{}{"error": err.Error()})
		default:
			seq++
			snapshot.Sequence = seq

			err = w.Publisher.Publish(ctx, snapshot)
			if err != nil {
				return fmt.Errorf("publishing snapshot %d: %w", seq, err)
			}

			if w.Count > 0 && seq >= uint64(w.Count) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *Watcher) poll(ctx context.Context, now func() time.Time) (*Snapshot, error) {
	result, err := w.Monitor.Search(ctx, w.Params)
	if err != nil {
		return nil, err
	}

	data, err := result.Unwrap()
	if err != nil {
		return nil, err
	}

	total := data.Total
	if total == 0 {
		total = len(data.Data)
	}

	return &Snapshot{Timestamp: now().UTC(), Total: total, Agents: data.Data}, nil
}

func (w *Watcher) warn(msg string, fields map[string]interface{}) {
	if w.Logger != nil {
		w.Logger.Warn(msg, fields)
	}
}
