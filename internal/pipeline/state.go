package pipeline

import "commerce-intent/internal/models"

// RequestState is the single mutable record threaded through the five
// stages of one request. Each field has exactly one writer stage and is
// never overwritten afterwards:
//
//	RawText        — set at creation
//	Intent         — classifier
//	PlannedTools   — planner
//	Evidence       — collector (append-only)
//	PolicyDecision — guard (set at most once)
//	Trace, Reply   — synthesizer
//
// State lives for one request and is discarded with the result; there is
// no cross-request memory.
type RequestState struct {
	RawText        string
	Intent         string
	PlannedTools   []string
	Evidence       []models.EvidenceItem
	PolicyDecision *models.PolicyDecision
	Trace          *models.Trace
	Reply          string
}

func newRequestState(text string) *RequestState {
	return &RequestState{RawText: text}
}
