package audit

import (
	"context"
	"sync"
)

// MemStore implements Store in memory, for tests and the CLI runner.
type MemStore struct {
	mu   sync.RWMutex
	logs map[string][]TraceRecord
}

func NewMemStore() *MemStore {
	return &MemStore{logs: make(map[string][]TraceRecord)}
}

func (m *MemStore) AppendTrace(ctx context.Context, rec TraceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs[rec.SessionID] = append(m.logs[rec.SessionID], rec)
	return nil
}

func (m *MemStore) ListTraces(ctx context.Context, sessionID string) ([]TraceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]TraceRecord, len(m.logs[sessionID]))
	copy(records, m.logs[sessionID])
	return records, nil
}

func (m *MemStore) ClearSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.logs, sessionID)
	return nil
}

func (m *MemStore) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.logs[sessionID]
	return ok, nil
}
