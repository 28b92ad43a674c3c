// Package policy implements the business rules the pipeline enforces:
// the 60-minute cancellation window and the discount-code guardrail.
// Every outcome is a value; policy never returns an error.
package policy

import (
	"fmt"
	"math"
	"strings"
	"time"

	"commerce-intent/internal/models"
	"commerce-intent/internal/store"
)

// CancellationDecision is the structured outcome of applying the
// cancellation window to an order.
type CancellationDecision struct {
	Allowed              bool
	Reason               string
	Message              string
	MinutesSinceCreation float64
	Alternatives         []string
}

// Alternatives offered when a cancellation is blocked. The order is part
// of the contract.
func CancellationAlternatives() []string {
	return []string{
		"Update shipping address",
		"Convert to store credit",
		"Connect with customer support",
	}
}

// Engine evaluates cancellation requests against the order book.
type Engine struct {
	store         *store.Store
	referenceTime time.Time
}

// NewEngine builds an engine. referenceTime is used whenever a caller
// does not supply its own clock, which keeps evaluation reproducible.
func NewEngine(s *store.Store, referenceTime time.Time) *Engine {
	return &Engine{store: s, referenceTime: referenceTime}
}

// EvaluateCancellation applies the 60-minute rule. A zero now falls back
// to the configured reference time. A lookup miss yields the same
// decision whether the id is unknown or the email does not match, so the
// outcome leaks nothing about which field was wrong.
func (e *Engine) EvaluateCancellation(orderID, email string, now time.Time) CancellationDecision {
	if now.IsZero() {
		now = e.referenceTime
	}

	order, found := e.store.FindOrder(orderID, email)
	if !found {
		return CancellationDecision{
			Allowed: false,
			Reason:  models.ReasonOrderNotFound,
			Message: "Order not found with provided ID and email",
		}
	}

	minutes := now.UTC().Sub(order.CreatedAt.UTC()).Minutes()

	// Exactly 60 minutes is still within the window.
	if minutes <= 60 {
		return CancellationDecision{
			Allowed:              true,
			Reason:               models.ReasonWithinPolicy,
			Message:              fmt.Sprintf("Order %s cancelled successfully. Refund will process in 3-5 business days.", orderID),
			MinutesSinceCreation: round1(minutes),
		}
	}

	return CancellationDecision{
		Allowed:              false,
		Reason:               models.ReasonPolicyViolation,
		Message:              fmt.Sprintf("Order was placed %.1f hours ago, beyond our 60-minute cancellation window.", round1(minutes/60)),
		MinutesSinceCreation: round1(minutes),
		Alternatives:         CancellationAlternatives(),
	}
}

// IsInvalidDiscountRequest reports whether the message asks for a
// discount code the system would have to invent. Pure text guard, no
// external calls.
func IsInvalidDiscountRequest(text string) bool {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "discount code") {
		return false
	}
	for _, marker := range []string{"doesn't exist", "non-existent", "fake"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
