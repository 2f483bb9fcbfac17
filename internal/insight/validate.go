package insight

import (
	"fmt"

	"flowradar/internal/types"
)

func validStatus(s types.WorkflowStatus) bool {
	switch s {
	case types.StatusActive, types.StatusCompleted, types.StatusBlocked, types.StatusIdle:
		return true
	}
	return false
}

func validPriority(p types.Priority) bool {
	switch p {
	case types.PriorityHigh, types.PriorityMedium, types.PriorityLow:
		return true
	}
	return false
}

// Validate checks a parsed AnalysisResult against the contract: enum
// membership, numeric ranges, and that every referenced workflow id exists
// in the analyzed input set.
func Validate(res types.AnalysisResult, input []types.Workflow) error {
	known := make(map[string]struct{}, len(input))
	for _, wf := range input {
		known[wf.ID] = struct{}{}
	}

	for i, wa := range res.Workflows {
		field := fmt.Sprintf("workflows[%d]", i)
		if _, ok := known[wa.ID]; !ok {
			return &types.SchemaViolationError{Field: field + ".id", Reason: fmt.Sprintf("unknown workflow %q", wa.ID)}
		}
		if !validStatus(wa.Status) {
			return &types.SchemaViolationError{Field: field + ".status", Reason: fmt.Sprintf("invalid status %q", wa.Status)}
		}
		if wa.Importance < 1 || wa.Importance > 10 {
			return &types.SchemaViolationError{Field: field + ".importance", Reason: fmt.Sprintf("%d is outside 1..10", wa.Importance)}
		}
		if wa.Narrative == "" {
			return &types.SchemaViolationError{Field: field + ".narrative", Reason: "is required"}
		}
		for j, step := range wa.NextSteps {
			if step.Confidence < 0 || step.Confidence > 1 {
				return &types.SchemaViolationError{
					Field:  fmt.Sprintf("%s.nextSteps[%d].confidence", field, j),
					Reason: fmt.Sprintf("%v is outside 0..1", step.Confidence),
				}
			}
		}
	}

	for i, rec := range res.Recommendations {
		field := fmt.Sprintf("recommendations[%d]", i)
		if !validPriority(rec.Priority) {
			return &types.SchemaViolationError{Field: field + ".priority", Reason: fmt.Sprintf("invalid priority %q", rec.Priority)}
		}
		for _, id := range rec.AffectedWorkflows {
			if _, ok := known[id]; !ok {
				return &types.SchemaViolationError{
					Field:  field + ".affectedWorkflows",
					Reason: fmt.Sprintf("unknown workflow %q", id),
				}
			}
		}
	}

	m := res.Insights.Metrics
	if m.TotalWorkflows < 0 || m.ActiveWorkflows < 0 || m.CompletedWorkflows < 0 {
		return &types.SchemaViolationError{Field: "insights.metrics", Reason: "counts must be non-negative"}
	}
	return nil
}
