package pipeline

import (
	"fmt"
	"strings"

	"commerce-intent/internal/models"
	"commerce-intent/internal/store"
)

// Fixed reply fragments. The wording is contract; tests compare bytes.
const (
	msgNoMatches = "I couldn't find any products matching your criteria. Please try adjusting your price range or preferences."

	msgNeedIdentifiers = "I need both your order ID and email address to help you with order-related requests."

	msgDiscountRefusal = "I can't provide non-existent discount codes, but I can suggest these legitimate offers:\n" +
		"• Sign up for our newsletter for 10% off your first order\n" +
		"• Follow us on social media for exclusive deals\n" +
		"• Check our current promotions page for active discounts"

	msgGenericHelp = "I'm here to help with product searches and order management. How can I assist you today?"
)

// synthesize builds the trace and the reply from the accumulated state.
// The trace's final_message is always the reply itself, so prose and
// record cannot disagree.
func (p *Pipeline) synthesize(st *RequestState) {
	trace := &models.Trace{
		Intent:         st.Intent,
		ToolsCalled:    st.PlannedTools,
		Evidence:       make([]map[string]any, 0, len(st.Evidence)),
		PolicyDecision: st.PolicyDecision,
	}
	if trace.ToolsCalled == nil {
		trace.ToolsCalled = []string{}
	}
	for _, item := range st.Evidence {
		trace.Evidence = append(trace.Evidence, item.TraceEntry())
	}

	reply := p.buildReply(st)
	trace.FinalMessage = reply

	st.Trace = trace
	st.Reply = reply
}

func (p *Pipeline) buildReply(st *RequestState) string {
	switch st.Intent {
	case models.IntentProductAssist:
		return buildProductReply(st)
	case models.IntentOrderHelp:
		return buildOrderReply(st.PolicyDecision)
	default:
		if st.PolicyDecision != nil && st.PolicyDecision.Refuse {
			return msgDiscountRefusal
		}
		return msgGenericHelp
	}
}

func buildProductReply(st *RequestState) string {
	var products []*models.Product
	for _, item := range st.Evidence {
		if item.Kind == models.EvidenceProduct {
			products = append(products, item.Product)
		}
	}
	if len(products) == 0 {
		return msgNoMatches
	}

	var b strings.Builder
	plural := ""
	if len(products) > 1 {
		plural = "es"
	}
	fmt.Fprintf(&b, "I found %d dress%s for you:\n\n", len(products), plural)

	for _, prod := range products {
		fmt.Fprintf(&b, "• %s ($%d, %s) - Available in %s\n",
			prod.Title, prod.Price, prod.Color, strings.Join(prod.Sizes, ", "))
	}

	if strings.Contains(strings.ToLower(st.RawText), "m/l") {
		fmt.Fprintf(&b, "\n%s.\n", store.SizeRecommendation(st.RawText))
	}

	if zip := extractZip(st.RawText); zip != "" {
		fmt.Fprintf(&b, "\nDelivery to %s: %s.", zip, store.DeliveryEstimate(zip))
	}

	return b.String()
}

func buildOrderReply(decision *models.PolicyDecision) string {
	if decision == nil {
		return msgNeedIdentifiers
	}
	if decision.CancelAllowed {
		return decision.Message
	}

	var b strings.Builder
	b.WriteString(decision.Message)
	b.WriteString("\n\nI can help you with these alternatives:\n")
	for i, alt := range decision.Alternatives {
		fmt.Fprintf(&b, "%d. %s\n", i+1, alt)
	}
	b.WriteString("\nWhich option would you prefer?")
	return b.String()
}
