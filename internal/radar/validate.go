package radar

import (
	"fmt"

	"flowradar/internal/types"
)

func validFrequency(f types.Frequency) bool {
	switch f {
	case types.FrequencyHourly, types.FrequencyDaily, types.FrequencyWeekly, types.FrequencyMonthly:
		return true
	}
	return false
}

func validNotifyCondition(c types.NotifyCondition) bool {
	switch c {
	case types.NotifyAlways, types.NotifySignificantChange, types.NotifyThreshold, types.NotifyNever:
		return true
	}
	return false
}

// Validate checks an InterpretationResult against the schema. All three
// groups must be structurally sound regardless of What.IsValid; topic,
// description and intent are only required when the interpretation claims to
// be valid.
func Validate(res types.InterpretationResult) error {
	if res.What.Confidence < 0 || res.What.Confidence > 1 {
		return &types.SchemaViolationError{Field: "what.confidence", Reason: fmt.Sprintf("%v is outside 0..1", res.What.Confidence)}
	}
	if res.What.IsValid {
		if res.What.Topic == "" {
			return &types.SchemaViolationError{Field: "what.topic", Reason: "is required"}
		}
		if res.What.Description == "" {
			return &types.SchemaViolationError{Field: "what.description", Reason: "is required"}
		}
		if res.Why.Intent == "" {
			return &types.SchemaViolationError{Field: "why.intent", Reason: "is required"}
		}
	}

	if !validFrequency(res.When.Frequency) {
		return &types.SchemaViolationError{Field: "when.frequency", Reason: fmt.Sprintf("invalid frequency %q", res.When.Frequency)}
	}
	if !validNotifyCondition(res.When.NotifyCondition) {
		return &types.SchemaViolationError{Field: "when.notifyCondition", Reason: fmt.Sprintf("invalid condition %q", res.When.NotifyCondition)}
	}
	if len(res.When.Options) != types.NotifyOptionCount {
		return &types.SchemaViolationError{
			Field:  "when.options",
			Reason: fmt.Sprintf("expected exactly %d options, got %d", types.NotifyOptionCount, len(res.When.Options)),
		}
	}
	for i, opt := range res.When.Options {
		if opt.Label == "" || opt.Value == "" {
			return &types.SchemaViolationError{
				Field:  fmt.Sprintf("when.options[%d]", i),
				Reason: "label and value are required",
			}
		}
	}

	if len(res.Why.SuggestedInsights) > 3 {
		return &types.SchemaViolationError{
			Field:  "why.suggestedInsights",
			Reason: fmt.Sprintf("at most 3 entries, got %d", len(res.Why.SuggestedInsights)),
		}
	}
	return nil
}
