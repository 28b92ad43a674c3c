package models

import "time"

// Intent values produced by the classifier.
const (
	IntentProductAssist = "product_assist"
	IntentOrderHelp     = "order_help"
	IntentOther         = "other"
)

// Tool names the planner can schedule.
const (
	ToolProductSearch   = "product_search"
	ToolSizeRecommender = "size_recommender"
	ToolETA             = "eta"
	ToolOrderLookup     = "order_lookup"
	ToolOrderCancel     = "order_cancel"
)

// Policy reason codes.
const (
	ReasonWithinPolicy           = "within_policy"
	ReasonPolicyViolation        = "policy_violation"
	ReasonOrderNotFound          = "order_not_found"
	ReasonInvalidDiscountRequest = "invalid_discount_request"
)

// Product is a catalog entry. Immutable after load.
type Product struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Price int      `json:"price"` // smallest currency unit
	Tags  []string `json:"tags"`
	Sizes []string `json:"sizes"`
	Color string   `json:"color"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string `json:"id"`
	Size      string `json:"size"`
}

// Order is a placed order. Cancellation is a decision, not a mutation;
// nothing in the pipeline ever writes an order back.
type Order struct {
	OrderID   string      `json:"order_id"`
	Email     string      `json:"email"`
	CreatedAt time.Time   `json:"created_at"` // UTC
	Items     []OrderItem `json:"items"`
}

// Evidence kinds.
const (
	EvidenceProduct = "product"
	EvidenceOrder   = "order"
)

// EvidenceItem is one structured fact gathered by the collector.
// Exactly one of Product/Order is set, according to Kind.
type EvidenceItem struct {
	Kind    string
	Product *Product
	Order   *Order
}

// TraceEntry reduces the evidence payload to the fields relevant to the
// customer-facing narrative: id plus whichever of title/price/sizes/
// order_id/email/color the underlying record carries.
func (e EvidenceItem) TraceEntry() map[string]any {
	switch e.Kind {
	case EvidenceProduct:
		if e.Product == nil {
			return map[string]any{"id": "unknown"}
		}
		return map[string]any{
			"id":    e.Product.ID,
			"title": e.Product.Title,
			"price": e.Product.Price,
			"sizes": e.Product.Sizes,
			"color": e.Product.Color,
		}
	case EvidenceOrder:
		if e.Order == nil {
			return map[string]any{"id": "unknown"}
		}
		return map[string]any{
			"id":       e.Order.OrderID,
			"order_id": e.Order.OrderID,
			"email":    e.Order.Email,
		}
	}
	return map[string]any{"id": "unknown"}
}

// PolicyDecision is the trace-facing outcome of the guard stage.
// CancelAllowed is always marshaled so every emitted decision satisfies
// the trace schema, including guardrail refusals.
type PolicyDecision struct {
	CancelAllowed bool     `json:"cancel_allowed"`
	Refuse        bool     `json:"refuse,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	Message       string   `json:"message,omitempty"`
	Alternatives  []string `json:"alternatives,omitempty"`
}

// Trace is the canonical structured record of one pipeline run.
// FinalMessage always equals the reply returned alongside it.
type Trace struct {
	Intent         string           `json:"intent" validate:"required,oneof=product_assist order_help other"`
	ToolsCalled    []string         `json:"tools_called"`
	Evidence       []map[string]any `json:"evidence"`
	PolicyDecision *PolicyDecision  `json:"policy_decision"`
	FinalMessage   string           `json:"final_message"`
}

// Transport request from the caller.
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Transport response to the caller.
type MessageResponse struct {
	SessionID      string  `json:"session_id"`
	RequestID      string  `json:"request_id,omitempty"`
	Intent         string  `json:"intent,omitempty"`
	Trace          *Trace  `json:"trace,omitempty"`
	Reply          string  `json:"reply"`
	Acknowledgment string  `json:"acknowledgment,omitempty"`
	ErrorCode      *string `json:"error_code,omitempty"`
	ErrorMessage   *string `json:"error_message,omitempty"`
}

// Error codes.
const (
	ErrorInvalidRequest = "INVALID_REQUEST"
	ErrorParseError     = "PARSE_ERROR"
	ErrorTraceInvalid   = "TRACE_INVALID"
)
