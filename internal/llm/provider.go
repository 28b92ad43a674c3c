package llm

import (
	"context"
	"fmt"

	"commerce-intent/internal/config"
)

// Provider generates a short acknowledgment of a customer message. It
// sits outside the policy-critical path: the pipeline never reads its
// output to make a decision, and a failing provider never aborts a
// request.
type Provider interface {
	Name() string
	GenerateAcknowledgment(ctx context.Context, message string) (string, error)
}

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderStub   = "stub"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// New selects a provider from configuration. The deterministic stub is
// the default.
func New(cfg *config.Config) (Provider, error) {
	switch cfg.LLMProvider {
	case "", ProviderStub:
		return NewStubProvider(), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case ProviderOllama:
		return NewOllamaProvider(cfg.OllamaModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
