package pipeline

import (
	"time"

	"commerce-intent/internal/models"
	"commerce-intent/internal/policy"
)

// guard applies business rules and records the policy decision. For
// order help it reuses the collector's identifier extraction and runs
// the cancellation engine; for everything else it checks the discount
// guardrail. Missing identifiers leave the decision unset, which the
// synthesizer turns into a clarifying prompt.
func (p *Pipeline) guard(st *RequestState) {
	switch st.Intent {
	case models.IntentOrderHelp:
		orderID, email := extractIdentifiers(st.RawText)
		if orderID == "" || email == "" {
			return
		}

		decision := p.engine.EvaluateCancellation(orderID, email, time.Time{})
		st.PolicyDecision = &models.PolicyDecision{
			CancelAllowed: decision.Allowed,
			Reason:        decision.Reason,
			Message:       decision.Message,
			Alternatives:  decision.Alternatives,
		}

	case models.IntentOther:
		if policy.IsInvalidDiscountRequest(st.RawText) {
			st.PolicyDecision = &models.PolicyDecision{
				Refuse: true,
				Reason: models.ReasonInvalidDiscountRequest,
			}
		}
	}
}
