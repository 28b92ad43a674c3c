package audit

import (
	"context"
	"time"

	"commerce-intent/internal/models"
)

// TraceRecord is one archived pipeline run.
type TraceRecord struct {
	RequestID string        `json:"request_id"`
	SessionID string        `json:"session_id"`
	Message   string        `json:"message"`
	Intent    string        `json:"intent"`
	Trace     *models.Trace `json:"trace"`
	CreatedAt time.Time     `json:"created_at"`
}

// SessionLog holds all archived runs of one session.
type SessionLog struct {
	SessionID string        `json:"session_id"`
	Records   []TraceRecord `json:"records"`
	Metadata  Metadata      `json:"metadata"`
}

// Metadata carries session bookkeeping.
type Metadata struct {
	StartedAt    time.Time `json:"started_at"`
	LastActivity time.Time `json:"last_activity"`
	RecordCount  int       `json:"record_count"`
}

// Store defines the interface for trace audit storage. This allows
// swapping between Redis, in-memory, etc. The audit log sits after the
// synthesizer; nothing in the pipeline ever reads it back, so it cannot
// become cross-request memory.
type Store interface {
	// AppendTrace archives one pipeline run under its session.
	AppendTrace(ctx context.Context, rec TraceRecord) error

	// ListTraces retrieves all archived runs for a session.
	ListTraces(ctx context.Context, sessionID string) ([]TraceRecord, error)

	// ClearSession removes a session's audit log.
	ClearSession(ctx context.Context, sessionID string) error

	// SessionExists checks whether a session has an audit log.
	SessionExists(ctx context.Context, sessionID string) (bool, error)
}
