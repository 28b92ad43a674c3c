package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"commerce-intent/internal/audit"
	"commerce-intent/internal/llm"
	"commerce-intent/internal/models"
	"commerce-intent/internal/pipeline"
	"commerce-intent/internal/prompts"
)

// MessageHandler runs the deterministic pipeline for one message and
// decorates the result with the optional acknowledgment and audit
// record. Only a trace schema violation is returned as an error; the
// acknowledgment backend and the audit store degrade to log lines.
type MessageHandler struct {
	pipeline *pipeline.Pipeline
	provider llm.Provider
	recorder *audit.Recorder // nil disables auditing
}

func NewMessageHandler(p *pipeline.Pipeline, provider llm.Provider, recorder *audit.Recorder) *MessageHandler {
	return &MessageHandler{
		pipeline: p,
		provider: provider,
		recorder: recorder,
	}
}

func (h *MessageHandler) ProcessMessage(ctx context.Context, request *models.MessageRequest) (*models.MessageResponse, error) {
	if err := h.validateRequest(request); err != nil {
		return h.createErrorResponse(request, models.ErrorInvalidRequest, err.Error()), nil
	}

	result, err := h.pipeline.Run(request.Message)
	if err != nil {
		// The emitted trace failed its own schema. This is the one hard
		// failure the caller must see.
		return nil, fmt.Errorf("pipeline produced invalid trace: %w", err)
	}

	response := &models.MessageResponse{
		SessionID: request.SessionID,
		RequestID: result.RequestID,
		Intent:    result.Intent,
		Trace:     result.Trace,
		Reply:     result.Reply,
	}

	if h.provider != nil {
		ack, err := h.provider.GenerateAcknowledgment(ctx, request.Message)
		if err != nil {
			log.Printf("Acknowledgment backend unavailable, continuing without: %v", err)
		} else {
			response.Acknowledgment = ack
		}
	}

	if h.recorder != nil {
		rec := audit.TraceRecord{
			RequestID: result.RequestID,
			SessionID: request.SessionID,
			Message:   request.Message,
			Intent:    result.Intent,
			Trace:     result.Trace,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.recorder.Record(ctx, rec); err != nil {
			log.Printf("Failed to archive trace for session %s: %v", request.SessionID, err)
		}
	}

	log.Printf("Message processed for session %s: intent=%s, tools=%d, evidence=%d",
		request.SessionID, result.Intent, len(result.Trace.ToolsCalled), len(result.Trace.Evidence))

	return response, nil
}

func (h *MessageHandler) validateRequest(request *models.MessageRequest) error {
	if request.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if request.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func (h *MessageHandler) createErrorResponse(request *models.MessageRequest, errorCode, errorMessage string) *models.MessageResponse {
	return &models.MessageResponse{
		SessionID:    request.SessionID,
		Reply:        prompts.FallbackMessage,
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
	}
}
