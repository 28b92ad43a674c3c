package audit

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Recorder wraps a Store and keeps a running count of archived traces.
type Recorder struct {
	store    Store
	recorded atomic.Int64
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record archives one pipeline run.
func (r *Recorder) Record(ctx context.Context, rec TraceRecord) error {
	if err := r.store.AppendTrace(ctx, rec); err != nil {
		return fmt.Errorf("failed to archive trace: %w", err)
	}
	r.recorded.Add(1)
	return nil
}

// History returns all archived runs for a session.
func (r *Recorder) History(ctx context.Context, sessionID string) ([]TraceRecord, error) {
	return r.store.ListTraces(ctx, sessionID)
}

// ClearSession drops a session's audit log.
func (r *Recorder) ClearSession(ctx context.Context, sessionID string) error {
	return r.store.ClearSession(ctx, sessionID)
}

// RecordedCount returns the number of traces archived by this recorder
// since startup.
func (r *Recorder) RecordedCount() int64 {
	return r.recorded.Load()
}

// Close closes the underlying store when it supports closing.
func (r *Recorder) Close() error {
	if closer, ok := r.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
