package types

// WorkflowStatus is the lifecycle state the reasoning capability assigns to a
// workflow from its event sequence.
type WorkflowStatus string

const (
	StatusActive    WorkflowStatus = "active"
	StatusCompleted WorkflowStatus = "completed"
	StatusBlocked   WorkflowStatus = "blocked"
	StatusIdle      WorkflowStatus = "idle"
)

// Priority ranks a cross-workflow recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type AnalysisMetrics struct {
	TotalWorkflows     int      `json:"totalWorkflows"`
	ActiveWorkflows    int      `json:"activeWorkflows"`
	CompletedWorkflows int      `json:"completedWorkflows"`
	AvgCompletionTime  string   `json:"avgCompletionTime"`
	Bottlenecks        []string `json:"bottlenecks"`
}

type AnalysisInsights struct {
	Summary string          `json:"summary"`
	Metrics AnalysisMetrics `json:"metrics"`
}

// NextStep is one ranked action for a single workflow.
type NextStep struct {
	Action     string  `json:"action"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}

type WorkflowAnalysis struct {
	ID                  string         `json:"id"`
	Narrative           string         `json:"narrative"`
	Status              WorkflowStatus `json:"status"`
	Importance          int            `json:"importance"`
	NextSteps           []NextStep     `json:"nextSteps"`
	Insights            []string       `json:"insights"`
	EstimatedCompletion string         `json:"estimatedCompletion,omitempty"`
}

// Recommendation spans workflows. AffectedWorkflows must reference ids from
// the analyzed input set; a reference to an unknown id is a validation defect.
type Recommendation struct {
	Priority          Priority `json:"priority"`
	Action            string   `json:"action"`
	Reasoning         string   `json:"reasoning"`
	AffectedWorkflows []string `json:"affectedWorkflows"`
}

// AnalysisResult is the full synthesized output for one analyze call.
type AnalysisResult struct {
	Insights        AnalysisInsights   `json:"insights"`
	Workflows       []WorkflowAnalysis `json:"workflows"`
	Recommendations []Recommendation   `json:"recommendations"`
}
