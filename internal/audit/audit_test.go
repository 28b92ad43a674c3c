package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-intent/internal/models"
)

func record(sessionID, intent string) TraceRecord {
	return TraceRecord{
		RequestID: uuid.NewString(),
		SessionID: sessionID,
		Message:   "hello",
		Intent:    intent,
		Trace: &models.Trace{
			Intent:       intent,
			ToolsCalled:  []string{},
			Evidence:     []map[string]any{},
			FinalMessage: "I'm here to help.",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	exists, err := s.SessionExists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.AppendTrace(ctx, record("s1", models.IntentOther)))
	require.NoError(t, s.AppendTrace(ctx, record("s1", models.IntentOrderHelp)))
	require.NoError(t, s.AppendTrace(ctx, record("s2", models.IntentProductAssist)))

	records, err := s.ListTraces(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.IntentOther, records[0].Intent)
	assert.Equal(t, models.IntentOrderHelp, records[1].Intent)

	exists, err = s.SessionExists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.ClearSession(ctx, "s1"))
	records, err = s.ListTraces(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, records)

	// Other sessions are untouched.
	records, err = s.ListTraces(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecorderCounts(t *testing.T) {
	ctx := context.Background()
	r := NewRecorder(NewMemStore())

	assert.EqualValues(t, 0, r.RecordedCount())

	require.NoError(t, r.Record(ctx, record("s1", models.IntentOther)))
	require.NoError(t, r.Record(ctx, record("s1", models.IntentOther)))
	assert.EqualValues(t, 2, r.RecordedCount())

	history, err := r.History(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, r.ClearSession(ctx, "s1"))
	history, err = r.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	// Count tracks what was recorded, not what is retained.
	assert.EqualValues(t, 2, r.RecordedCount())

	assert.NoError(t, r.Close())
}
