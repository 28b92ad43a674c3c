// Package pipeline runs the five-stage dialogue pipeline: classify,
// plan, collect, guard, synthesize. Stages execute strictly in sequence
// over one RequestState; no stage is skipped, reordered or re-entered.
// All decisions are deterministic; no generative backend is consulted.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"commerce-intent/internal/models"
	"commerce-intent/internal/policy"
	"commerce-intent/internal/schema"
	"commerce-intent/internal/store"
)

// Pipeline orchestrates one request end to end. It is safe for
// concurrent use across requests because the store is read-only and all
// per-request state lives in the RequestState.
type Pipeline struct {
	store  *store.Store
	engine *policy.Engine
}

// New wires the pipeline to its store. referenceTime anchors policy
// evaluation so runs are reproducible without a wall clock.
func New(s *store.Store, referenceTime time.Time) *Pipeline {
	return &Pipeline{
		store:  s,
		engine: policy.NewEngine(s, referenceTime),
	}
}

// Result is the outcome of one pipeline run.
type Result struct {
	RequestID string
	Intent    string
	Trace     *models.Trace
	Reply     string
}

// Run processes one message start to finish and returns the trace and
// reply. The produced trace is always validated; a schema violation is
// the only error this can return.
func (p *Pipeline) Run(text string) (*Result, error) {
	st := newRequestState(text)

	st.Intent = Classify(st.RawText)
	st.PlannedTools = Plan(st.Intent)
	p.collect(st)
	p.guard(st)
	p.synthesize(st)

	if err := schema.ValidateTrace(st.Trace); err != nil {
		return nil, err
	}

	return &Result{
		RequestID: uuid.NewString(),
		Intent:    st.Intent,
		Trace:     st.Trace,
		Reply:     st.Reply,
	}, nil
}
