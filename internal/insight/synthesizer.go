package insight

import (
	"context"
	"encoding/json"

	"flowradar/internal/llm"
	"flowradar/internal/prompt"
	"flowradar/internal/types"
	"flowradar/internal/workflow"
)

var analyzeSpec = prompt.Spec{
	Purpose: "You are analyzing development workflows. Each workflow links an issue-tracker item " +
		"to an optional pull request; its events are listed in true chronological order.",
	Background: "Input JSON is a list of {workflow, events} bundles. Event types include comments, " +
		"reviews and status changes from Jira and GitHub.",
	OutputFields: []prompt.Field{
		{Name: "insights", Type: "object", Required: true, Description: "summary (string) and metrics {totalWorkflows, activeWorkflows, completedWorkflows (integers), avgCompletionTime (human string), bottlenecks ([]string)}"},
		{Name: "workflows", Type: "array", Required: true, Description: "one entry per input workflow: {id, narrative, status, importance, nextSteps, insights, estimatedCompletion}"},
		{Name: "recommendations", Type: "array", Required: true, Description: "cross-workflow items: {priority, action, reasoning, affectedWorkflows}"},
	},
	Constraints: []string{
		`status must be one of "active", "completed", "blocked", "idle"`,
		"importance is an integer from 1 to 10",
		"each nextSteps entry is {action, reasoning, confidence} with confidence between 0 and 1",
		`priority must be one of "high", "medium", "low"`,
		"affectedWorkflows may only contain ids of input workflows",
	},
	Rules: []string{
		"Cover every input workflow exactly once.",
		"Keep narratives to a few sentences; mention concrete events.",
		"If the input is empty, return zero metrics and empty arrays.",
	},
	OutputFormat: "STRICT JSON only; no comments, no markdown fences, no trailing commas.",
}

// Input bundles one analyze request.
type Input struct {
	Workflows []types.Workflow `json:"workflows"`
	Events    []types.Event    `json:"events"`
}

// Synthesizer turns a workflow+event set into an AnalysisResult through a
// single call to the reasoning capability. Stateless; safe for concurrent
// use with distinct requests.
type Synthesizer struct {
	LLM llm.LLMClient
}

// Run aggregates the events, makes exactly one outbound call, and parses the
// response strictly. An empty input set still goes to the model; there is no
// local fallback result. Responses that fail to parse surface as
// MalformedResponseError, responses that parse but break the contract as
// SchemaViolationError; neither case ever returns a partial result.
func (s *Synthesizer) Run(ctx context.Context, in Input) (types.AnalysisResult, error) {
	groups, err := workflow.Aggregate(in.Workflows, in.Events)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	p, err := prompt.Build(analyzeSpec, groups)
	if err != nil {
		return types.AnalysisResult{}, err
	}
	raw, err := s.LLM.GenerateJSON(ctx, p, nil)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	// Pointer field so an absent insights group is distinguishable from one
	// with zero metrics, which is a legitimate empty-input answer.
	var env struct {
		Insights        *types.AnalysisInsights  `json:"insights"`
		Workflows       []types.WorkflowAnalysis `json:"workflows"`
		Recommendations []types.Recommendation   `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return types.AnalysisResult{}, &types.MalformedResponseError{Raw: string(raw), Err: err}
	}
	if env.Insights == nil {
		return types.AnalysisResult{}, &types.SchemaViolationError{Field: "insights", Reason: "group is missing"}
	}
	out := types.AnalysisResult{
		Insights:        *env.Insights,
		Workflows:       env.Workflows,
		Recommendations: env.Recommendations,
	}
	if err := Validate(out, in.Workflows); err != nil {
		return types.AnalysisResult{}, err
	}
	return out, nil
}
