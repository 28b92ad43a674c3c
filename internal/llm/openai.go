package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"commerce-intent/internal/prompts"
)

// OpenAIProvider generates acknowledgments through the OpenAI chat API.
type OpenAIProvider struct {
	model *openai.LLM
}

func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}

	return &OpenAIProvider{model: client}, nil
}

func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

func (p *OpenAIProvider) GenerateAcknowledgment(ctx context.Context, message string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, p.model,
		prompts.BuildAcknowledgmentPrompt(message),
		llms.WithTemperature(0),
		llms.WithMaxTokens(120),
	)
	if err != nil {
		return "", fmt.Errorf("openai generation failed: %w", err)
	}
	return reply, nil
}
