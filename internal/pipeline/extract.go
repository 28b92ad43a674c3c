package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultPriceCeiling applies when the message names no budget.
const defaultPriceCeiling = 1000

var (
	priceRe   = regexp.MustCompile(`(?i)under.*?(\d+)`)
	orderIDRe = regexp.MustCompile(`(?i)order\s+([A-Za-z]\d+)`)
	emailRe   = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	zipRe     = regexp.MustCompile(`\b\d{6}\b`)
)

// extractPriceCeiling pulls the integer after "under", e.g.
// "under $120" -> 120.
func extractPriceCeiling(text string) int {
	m := priceRe.FindStringSubmatch(text)
	if m == nil {
		return defaultPriceCeiling
	}
	ceiling, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultPriceCeiling
	}
	return ceiling
}

// deriveSearchTerms applies the fixed tag heuristic: a mention of
// "wedding" or "midi" searches for midi dresses with both tags, anything
// else searches the whole catalog.
func deriveSearchTerms(text string) (query string, tags []string) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "wedding") || strings.Contains(lower, "midi") {
		return "midi", []string{"wedding", "midi"}
	}
	return "", nil
}

// extractIdentifiers pulls the order id ("order A1003") and an
// email-shaped token from the message. Either comes back empty when
// absent; the caller treats that as insufficient identification, never
// as an error.
func extractIdentifiers(text string) (orderID, email string) {
	if m := orderIDRe.FindStringSubmatch(text); m != nil {
		orderID = m[1]
	}
	email = emailRe.FindString(text)
	return orderID, email
}

// extractZip finds a 6-digit token, if any.
func extractZip(text string) string {
	return zipRe.FindString(text)
}
