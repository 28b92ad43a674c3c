package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"commerce-intent/internal/config"
	"commerce-intent/internal/handlers"
	"commerce-intent/internal/models"
	"commerce-intent/internal/prompts"
)

type NATSTransport struct {
	conn    *nats.Conn
	config  *config.Config
	handler *handlers.MessageHandler
}

func NewNATSTransport(cfg *config.Config, handler *handlers.MessageHandler) (*NATSTransport, error) {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name(cfg.ServiceName),
		nats.Timeout(cfg.NatsTimeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1), // Infinite reconnects
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Printf("Connected to NATS server: %s", cfg.NatsURL)

	return &NATSTransport{
		conn:    conn,
		config:  cfg,
		handler: handler,
	}, nil
}

func (nt *NATSTransport) Start() error {
	_, err := nt.conn.Subscribe(nt.config.NatsRequestSubject, nt.handleMessageRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", nt.config.NatsRequestSubject, err)
	}

	log.Printf("Subscribed to subject: %s", nt.config.NatsRequestSubject)
	return nil
}

func (nt *NATSTransport) handleMessageRequest(msg *nats.Msg) {
	var request models.MessageRequest
	if err := json.Unmarshal(msg.Data, &request); err != nil {
		log.Printf("Error parsing request: %v", err)
		nt.sendErrorResponse(msg, &request, models.ErrorParseError, "Invalid request format")
		return
	}

	log.Printf("Processing message for session: %s", request.SessionID)

	ctx, cancel := context.WithTimeout(context.Background(), nt.config.LLMTimeout)
	defer cancel()

	response, err := nt.handler.ProcessMessage(ctx, &request)
	if err != nil {
		// Trace schema violation: surface it, do not degrade.
		log.Printf("Error processing message: %v", err)
		nt.sendErrorResponse(msg, &request, models.ErrorTraceInvalid, err.Error())
		return
	}

	if err := nt.sendResponse(msg, response); err != nil {
		log.Printf("Error sending response: %v", err)
	}
}

func (nt *NATSTransport) sendResponse(msg *nats.Msg, response *models.MessageResponse) error {
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := msg.Respond(responseData); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Printf("Response sent for session: %s, intent: %s", response.SessionID, response.Intent)
	return nil
}

func (nt *NATSTransport) sendErrorResponse(msg *nats.Msg, request *models.MessageRequest, errorCode, errorMessage string) {
	response := &models.MessageResponse{
		SessionID:    request.SessionID,
		Reply:        prompts.FallbackMessage,
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
	}

	if err := nt.sendResponse(msg, response); err != nil {
		log.Printf("Failed to send error response: %v", err)
	}
}

func (nt *NATSTransport) Close() error {
	if nt.conn != nil {
		nt.conn.Close()
		log.Println("NATS connection closed")
	}
	return nil
}
