package pipeline

import "commerce-intent/internal/models"

// collect gathers evidence for each planned tool. Tools trigger
// independently; a malformed or incomplete message simply yields no
// evidence for that tool.
func (p *Pipeline) collect(st *RequestState) {
	if hasTool(st.PlannedTools, models.ToolProductSearch) {
		ceiling := extractPriceCeiling(st.RawText)
		query, tags := deriveSearchTerms(st.RawText)

		for _, product := range p.store.SearchProducts(query, ceiling, tags) {
			prod := product
			st.Evidence = append(st.Evidence, models.EvidenceItem{
				Kind:    models.EvidenceProduct,
				Product: &prod,
			})
		}
	}

	if hasTool(st.PlannedTools, models.ToolOrderLookup) {
		orderID, email := extractIdentifiers(st.RawText)
		if orderID != "" && email != "" {
			if order, found := p.store.FindOrder(orderID, email); found {
				ord := order
				st.Evidence = append(st.Evidence, models.EvidenceItem{
					Kind:  models.EvidenceOrder,
					Order: &ord,
				})
			}
		}
	}

	// order_cancel adds no evidence of its own; the guard stage resolves
	// it through the policy engine.
}

func hasTool(tools []string, name string) bool {
	for _, t := range tools {
		if t == name {
			return true
		}
	}
	return false
}
