// Package schema validates the trace object other systems rely on.
// A violation here is the one hard failure in the pipeline.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"commerce-intent/internal/models"
)

// traceValidate is the shared validator instance for trace objects.
var traceValidate = validator.New()

// ValidationError reports a trace that does not satisfy the schema.
type ValidationError struct {
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("trace schema violation: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("trace schema violation: %s", e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func violation(detail string, err error) *ValidationError {
	return &ValidationError{Detail: detail, Err: err}
}

// ValidateTrace checks a built trace against the schema: intent in its
// enum, tools_called and evidence present as arrays, policy_decision
// null or an object carrying cancel_allowed, final_message a string.
func ValidateTrace(t *models.Trace) error {
	if t == nil {
		return violation("trace is nil", nil)
	}
	if t.ToolsCalled == nil {
		return violation("tools_called must be an array", nil)
	}
	if t.Evidence == nil {
		return violation("evidence must be an array", nil)
	}
	if err := traceValidate.Struct(t); err != nil {
		return violation("invalid field", err)
	}
	return nil
}

// requiredKeys are the trace object's mandatory members.
var requiredKeys = []string{"intent", "tools_called", "evidence", "policy_decision", "final_message"}

// ValidateTraceJSON validates a raw trace document at the contract
// boundary and returns the decoded trace when it conforms.
func ValidateTraceJSON(data []byte) (*models.Trace, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, violation("trace is not a JSON object", err)
	}

	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, violation(fmt.Sprintf("missing required field %q", key), nil)
		}
	}

	var t models.Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, violation("field has wrong type", err)
	}

	// policy_decision must be null or an object that names cancel_allowed.
	if pd := raw["policy_decision"]; string(pd) != "null" {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(pd, &obj); err != nil {
			return nil, violation("policy_decision must be null or an object", err)
		}
		allowed, ok := obj["cancel_allowed"]
		if !ok {
			return nil, violation("policy_decision requires cancel_allowed", nil)
		}
		var b bool
		if err := json.Unmarshal(allowed, &b); err != nil {
			return nil, violation("cancel_allowed must be a boolean", err)
		}
	}

	if err := ValidateTrace(&t); err != nil {
		return nil, err
	}
	return &t, nil
}
