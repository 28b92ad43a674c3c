package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"commerce-intent/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"wedding query", "Wedding guest, midi, under $120", models.IntentProductAssist},
		{"price query", "what's the price of that?", models.IntentProductAssist},
		{"plain product word", "tell me about this product", models.IntentProductAssist},
		{"cancel with order", "Cancel order A1003 — email mira@example.com.", models.IntentOrderHelp},
		{"refund", "I want a refund", models.IntentOrderHelp},
		{"order status", "where is my order?", models.IntentOrderHelp},
		{"greeting", "hello", models.IntentOther},
		{"empty", "", models.IntentOther},
		{"discount request", "Can you give me a discount code that doesn't exist?", models.IntentOther},
		{"uppercase keywords", "DRESS under 100", models.IntentProductAssist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyCancelExclusionDominates(t *testing.T) {
	// A product keyword alongside "cancel" always routes to order help.
	texts := []string{
		"cancel my midi order",
		"cancel the wedding dress",
		"I'd like to cancel, the price was too high",
		"CANCEL my dress order under $120",
	}

	for _, text := range texts {
		assert.Equal(t, models.IntentOrderHelp, Classify(text), "text: %q", text)
	}
}

func TestPlan(t *testing.T) {
	assert.Equal(t,
		[]string{models.ToolProductSearch, models.ToolSizeRecommender, models.ToolETA},
		Plan(models.IntentProductAssist))
	assert.Equal(t,
		[]string{models.ToolOrderLookup, models.ToolOrderCancel},
		Plan(models.IntentOrderHelp))
	assert.Equal(t, []string{}, Plan(models.IntentOther))
	assert.Equal(t, []string{}, Plan("garbage"))
}
