package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-intent/internal/audit"
	"commerce-intent/internal/llm"
	"commerce-intent/internal/models"
	"commerce-intent/internal/pipeline"
	"commerce-intent/internal/store"
)

// failingProvider simulates an unreachable generative backend.
type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }

func (failingProvider) GenerateAcknowledgment(ctx context.Context, message string) (string, error) {
	return "", errors.New("backend unavailable")
}

func newHandler(t *testing.T, provider llm.Provider, recorder *audit.Recorder) *MessageHandler {
	t.Helper()
	ref, err := time.Parse(time.RFC3339, "2025-09-08T11:05:00Z")
	require.NoError(t, err)
	pipe := pipeline.New(store.NewFixture(store.SeedProducts(), store.SeedOrders()), ref.UTC())
	return NewMessageHandler(pipe, provider, recorder)
}

func TestProcessMessageReturnsConsistentTrace(t *testing.T) {
	recorder := audit.NewRecorder(audit.NewMemStore())
	h := newHandler(t, llm.NewStubProvider(), recorder)

	response, err := h.ProcessMessage(context.Background(), &models.MessageRequest{
		SessionID: "s1",
		Message:   "Cancel order A1003 — email mira@example.com.",
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", response.SessionID)
	assert.NotEmpty(t, response.RequestID)
	assert.Equal(t, models.IntentOrderHelp, response.Intent)
	require.NotNil(t, response.Trace)
	assert.Equal(t, response.Reply, response.Trace.FinalMessage)
	assert.Nil(t, response.ErrorCode)

	// The stub acknowledged without influencing the decision.
	assert.Equal(t, "I'll look up your order and check our cancellation policy.", response.Acknowledgment)
	assert.False(t, response.Trace.PolicyDecision.CancelAllowed)

	// The run was archived.
	history, err := recorder.History(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, response.RequestID, history[0].RequestID)
	assert.Equal(t, response.Trace, history[0].Trace)
}

func TestProcessMessageBackendFailureDoesNotAbort(t *testing.T) {
	h := newHandler(t, failingProvider{}, nil)

	response, err := h.ProcessMessage(context.Background(), &models.MessageRequest{
		SessionID: "s1",
		Message:   "hello",
	})
	require.NoError(t, err)

	assert.Empty(t, response.Acknowledgment)
	assert.Equal(t, "I'm here to help with product searches and order management. How can I assist you today?", response.Reply)
	assert.Nil(t, response.ErrorCode)
}

func TestProcessMessageValidatesRequest(t *testing.T) {
	h := newHandler(t, llm.NewStubProvider(), nil)
	ctx := context.Background()

	response, err := h.ProcessMessage(ctx, &models.MessageRequest{Message: "hello"})
	require.NoError(t, err)
	require.NotNil(t, response.ErrorCode)
	assert.Equal(t, models.ErrorInvalidRequest, *response.ErrorCode)

	response, err = h.ProcessMessage(ctx, &models.MessageRequest{SessionID: "s1"})
	require.NoError(t, err)
	require.NotNil(t, response.ErrorCode)
	assert.Equal(t, models.ErrorInvalidRequest, *response.ErrorCode)
	assert.NotEmpty(t, response.Reply)
}

func TestProcessMessageWithoutProviderOrRecorder(t *testing.T) {
	h := newHandler(t, nil, nil)

	response, err := h.ProcessMessage(context.Background(), &models.MessageRequest{
		SessionID: "s1",
		Message:   "Wedding guest, midi, under $120",
	})
	require.NoError(t, err)
	assert.Equal(t, models.IntentProductAssist, response.Intent)
	assert.Empty(t, response.Acknowledgment)
}
