package llm

import (
	"context"
	"strings"
)

// StubProvider is the deterministic acknowledgment generator used in
// tests and as the default backend. It mirrors the keyword routing of
// the classifier closely enough to sound on-topic without ever deciding
// anything.
type StubProvider struct{}

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (s *StubProvider) Name() string { return ProviderStub }

func (s *StubProvider) GenerateAcknowledgment(ctx context.Context, message string) (string, error) {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "wedding", "dress", "midi", "product"):
		return "I'll help you find wedding dresses within your budget.", nil
	case strings.Contains(lower, "cancel order"):
		return "I'll look up your order and check our cancellation policy.", nil
	case strings.Contains(lower, "discount code"):
		return "I cannot provide non-existent discount codes, but I can suggest legitimate offers.", nil
	default:
		return "I'll help you with your request.", nil
	}
}

func containsAny(lower string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
