package radar

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"flowradar/internal/llm"
	"flowradar/internal/prompt"
	"flowradar/internal/types"
)

// MaxInputLen caps free-text input before any outbound call, bounding prompt
// cost and latency.
const MaxInputLen = 500

var interpretSpec = prompt.Spec{
	Purpose: "Interpret the user's free-text request into a structured tracking spec (a \"radar\"): " +
		"what to track, how often to check it, and why the user wants it.",
	Background: "Input JSON carries the raw text and, when available, topics the user already tracks " +
		"(use them to disambiguate, never to duplicate).",
	OutputFields: []prompt.Field{
		{Name: "what", Type: "object", Required: true, Description: "{topic, description, isValid, confidence}; isValid=false when the text cannot be formalized into a trackable topic"},
		{Name: "when", Type: "object", Required: true, Description: "{frequency, schedule, notifyCondition, options}; options is EXACTLY three {label, value, isRecommended} choices"},
		{Name: "why", Type: "object", Required: true, Description: "{intent (1-2 sentences), suggestedInsights (0-3 strings)}"},
	},
	Constraints: []string{
		`frequency must be one of "hourly", "daily", "weekly", "monthly"`,
		`notifyCondition must be one of "always", "significant_change", "threshold", "never"`,
		"when.options must contain exactly 3 entries, exactly one with isRecommended=true",
		"confidence is a number between 0 and 1",
		"suggestedInsights has at most 3 entries",
	},
	Rules: []string{
		"Always emit all three groups, even when isValid is false.",
		"Keep topic short; push detail into description.",
	},
	OutputFormat: "STRICT JSON only; no comments, no markdown fences, no trailing commas.",
}

// Context carries optional disambiguation data for one interpretation.
type Context struct {
	ExistingTopics []string `json:"existingTopics,omitempty"`
}

// Interpreter turns free text into a validated InterpretationResult through
// a single call to the reasoning capability. Stateless; retry policy belongs
// to the caller.
type Interpreter struct {
	LLM llm.LLMClient
}

// Run validates the input bound first, then makes exactly one outbound call.
// A structurally valid result with isValid=false is a legitimate success.
func (i *Interpreter) Run(ctx context.Context, input string, rctx *Context) (types.InterpretationResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.InterpretationResult{}, fmt.Errorf("radar: input is empty")
	}
	if n := utf8.RuneCountInString(input); n > MaxInputLen {
		return types.InterpretationResult{}, &types.InputTooLongError{Length: n, Max: MaxInputLen}
	}

	payload := map[string]any{"input": input}
	if rctx != nil && len(rctx.ExistingTopics) > 0 {
		payload["existingTopics"] = rctx.ExistingTopics
	}
	p, err := prompt.Build(interpretSpec, payload)
	if err != nil {
		return types.InterpretationResult{}, err
	}
	raw, err := i.LLM.GenerateJSON(ctx, p, nil)
	if err != nil {
		return types.InterpretationResult{}, err
	}

	// Pointer fields so an absent group is distinguishable from its zero
	// value; a zero-value what would otherwise slip through as isValid=false.
	var env struct {
		What *types.InterpretationWhat `json:"what"`
		When *types.InterpretationWhen `json:"when"`
		Why  *types.InterpretationWhy  `json:"why"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return types.InterpretationResult{}, &types.MalformedResponseError{Raw: string(raw), Err: err}
	}
	switch {
	case env.What == nil:
		return types.InterpretationResult{}, &types.SchemaViolationError{Field: "what", Reason: "group is missing"}
	case env.When == nil:
		return types.InterpretationResult{}, &types.SchemaViolationError{Field: "when", Reason: "group is missing"}
	case env.Why == nil:
		return types.InterpretationResult{}, &types.SchemaViolationError{Field: "why", Reason: "group is missing"}
	}
	out := types.InterpretationResult{What: *env.What, When: *env.When, Why: *env.Why}
	if err := Validate(out); err != nil {
		return types.InterpretationResult{}, err
	}
	return out, nil
}
