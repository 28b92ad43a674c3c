package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"commerce-intent/internal/prompts"
)

// OllamaProvider generates acknowledgments through a local Ollama
// server.
type OllamaProvider struct {
	model *ollama.LLM
}

func NewOllamaProvider(model string) (*OllamaProvider, error) {
	client, err := ollama.New(ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Ollama client: %w", err)
	}

	return &OllamaProvider{model: client}, nil
}

func (p *OllamaProvider) Name() string { return ProviderOllama }

func (p *OllamaProvider) GenerateAcknowledgment(ctx context.Context, message string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, p.model,
		prompts.BuildAcknowledgmentPrompt(message),
		llms.WithTemperature(0),
		llms.WithMaxTokens(120),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}
	return reply, nil
}
