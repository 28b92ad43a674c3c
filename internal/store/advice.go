package store

import (
	"strconv"
	"strings"
)

// SizeRecommendation maps fit preferences mentioned in the message to a
// size suggestion. Purely keyword-driven.
func SizeRecommendation(text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "fitted", "tight", "small", "petite"):
		return "I'd recommend size M for a more fitted look"
	case containsAny(lower, "loose", "comfortable", "roomy", "large"):
		return "I'd recommend size L for a more comfortable fit"
	case strings.Contains(lower, "between m/l") || strings.Contains(lower, "between m and l"):
		return "For M vs L: choose M if you prefer fitted style, L if you want more room and comfort"
	default:
		return "I'd recommend size M as a good middle ground, but L if you prefer looser fits"
	}
}

// DeliveryEstimate derives a shipping window from the digits of a zip
// code. Shorter codes are zero-padded on the right before bucketing.
func DeliveryEstimate(zip string) string {
	var digits strings.Builder
	for _, r := range zip {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "3-4 business days"
	}

	padded := digits.String()
	if len(padded) > 6 {
		padded = padded[:6]
	}
	for len(padded) < 6 {
		padded += "0"
	}

	zipInt, _ := strconv.Atoi(padded)
	switch {
	case zipInt < 400000:
		return "3-4 business days"
	case zipInt < 600000:
		return "2-3 business days"
	default:
		return "4-5 business days"
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
