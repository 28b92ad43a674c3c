package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-intent/internal/models"
	"commerce-intent/internal/store"
)

const (
	testOrderID = "A1003"
	testEmail   = "mira@example.com"
)

// A1003 in the seed set is created at this instant.
var orderCreatedAt = mustParse("2025-09-07T11:55:00Z")

var referenceTime = mustParse("2025-09-08T11:05:00Z")

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	s := store.NewFixture(store.SeedProducts(), store.SeedOrders())
	return NewEngine(s, referenceTime)
}

func TestEvaluateCancellationWindowBoundary(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name    string
		now     time.Time
		allowed bool
		reason  string
	}{
		{"59 minutes allowed", orderCreatedAt.Add(59 * time.Minute), true, models.ReasonWithinPolicy},
		{"exactly 60 minutes allowed", orderCreatedAt.Add(60 * time.Minute), true, models.ReasonWithinPolicy},
		{"60 minutes and a hair blocked", orderCreatedAt.Add(60*time.Minute + 6*time.Millisecond), false, models.ReasonPolicyViolation},
		{"61 minutes blocked", orderCreatedAt.Add(61 * time.Minute), false, models.ReasonPolicyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := engine.EvaluateCancellation(testOrderID, testEmail, tt.now)
			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, tt.reason, decision.Reason)
		})
	}
}

func TestEvaluateCancellationAllowedMessage(t *testing.T) {
	engine := newEngine(t)

	decision := engine.EvaluateCancellation(testOrderID, testEmail, orderCreatedAt.Add(30*time.Minute))
	require.True(t, decision.Allowed)
	assert.Equal(t, "Order A1003 cancelled successfully. Refund will process in 3-5 business days.", decision.Message)
	assert.InDelta(t, 30.0, decision.MinutesSinceCreation, 0.01)
	assert.Empty(t, decision.Alternatives)
}

func TestEvaluateCancellationBlockedAtReferenceTime(t *testing.T) {
	engine := newEngine(t)

	// Zero now falls back to the configured reference time, 1390 minutes
	// after the order was created.
	decision := engine.EvaluateCancellation(testOrderID, testEmail, time.Time{})
	require.False(t, decision.Allowed)
	assert.Equal(t, models.ReasonPolicyViolation, decision.Reason)
	assert.InDelta(t, 1390.0, decision.MinutesSinceCreation, 0.01)
	assert.Equal(t, "Order was placed 23.2 hours ago, beyond our 60-minute cancellation window.", decision.Message)
	assert.Equal(t, []string{
		"Update shipping address",
		"Convert to store credit",
		"Connect with customer support",
	}, decision.Alternatives)
}

func TestEvaluateCancellationLookupMissLeaksNothing(t *testing.T) {
	engine := newEngine(t)
	now := orderCreatedAt.Add(10 * time.Minute)

	wrongEmail := engine.EvaluateCancellation(testOrderID, "intruder@example.com", now)
	unknownID := engine.EvaluateCancellation("Z9999", "intruder@example.com", now)

	// A correct id with the wrong email must be indistinguishable from a
	// nonexistent id.
	assert.Equal(t, unknownID, wrongEmail)
	assert.False(t, wrongEmail.Allowed)
	assert.Equal(t, models.ReasonOrderNotFound, wrongEmail.Reason)
	assert.Equal(t, "Order not found with provided ID and email", wrongEmail.Message)
	assert.Empty(t, wrongEmail.Alternatives)
	assert.Zero(t, wrongEmail.MinutesSinceCreation)
}

func TestEvaluateCancellationCaseSensitiveLookup(t *testing.T) {
	engine := newEngine(t)
	now := orderCreatedAt.Add(10 * time.Minute)

	decision := engine.EvaluateCancellation("a1003", testEmail, now)
	assert.Equal(t, models.ReasonOrderNotFound, decision.Reason)

	decision = engine.EvaluateCancellation(testOrderID, "MIRA@example.com", now)
	assert.Equal(t, models.ReasonOrderNotFound, decision.Reason)
}

func TestIsInvalidDiscountRequest(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Can you give me a discount code that doesn't exist?", true},
		{"I need a non-existent discount code", true},
		{"give me a fake discount code", true},
		{"do you have a discount code?", false},
		{"this product is fake", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInvalidDiscountRequest(tt.text), "text: %q", tt.text)
	}
}
