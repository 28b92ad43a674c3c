package pipeline

import (
	"strings"

	"commerce-intent/internal/models"
)

var productKeywords = []string{"dress", "product", "wedding", "midi", "size", "price", "eta", "under"}

var orderKeywords = []string{"cancel", "order", "refund"}

// Classify maps a message to an intent by case-insensitive substring
// matching. A product keyword wins only when "cancel" is absent, so
// "cancel my midi order" still routes to order help. Empty text is
// "other". Pure and total.
func Classify(text string) string {
	lower := strings.ToLower(text)

	if matchesAny(lower, productKeywords) && !strings.Contains(lower, "cancel") {
		return models.IntentProductAssist
	}
	if matchesAny(lower, orderKeywords) {
		return models.IntentOrderHelp
	}
	return models.IntentOther
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
