package pipeline

import "commerce-intent/internal/models"

// Plan selects the tools for an intent. Static lookup, no failure mode.
// The returned slice is always fresh so callers cannot mutate the table.
func Plan(intent string) []string {
	switch intent {
	case models.IntentProductAssist:
		return []string{models.ToolProductSearch, models.ToolSizeRecommender, models.ToolETA}
	case models.IntentOrderHelp:
		return []string{models.ToolOrderLookup, models.ToolOrderCancel}
	default:
		return []string{}
	}
}
