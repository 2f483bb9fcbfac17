package types

import "time"

// Provider identifies the external tracker an event originated from.
type Provider string

const (
	ProviderJira   Provider = "jira"
	ProviderGitHub Provider = "github"
)

// ActorKind classifies who produced an event.
type ActorKind string

const (
	ActorKindHuman ActorKind = "human"
	ActorKindAgent ActorKind = "agent"
	ActorKindBot   ActorKind = "bot"
)

// Actor is the identity behind an event. Immutable once created; the id is
// whatever the originating provider uses as a stable identity.
type Actor struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Handle string    `json:"handle,omitempty"`
	Kind   ActorKind `json:"kind"`
}

// EntityRef is a tagged reference to the provider object an event is about
// (issue, pull request, comment, ...). Which optional fields are set depends
// on (provider, kind); unknown provider detail rides in Event.Payload instead
// of growing a subtype per entity.
type EntityRef struct {
	Kind     string   `json:"kind"`
	Provider Provider `json:"provider"`
	ID       string   `json:"id,omitempty"`
	Key      string   `json:"key,omitempty"`
	Title    string   `json:"title,omitempty"`
	URL      string   `json:"url,omitempty"`
	Owner    string   `json:"owner,omitempty"`
	Repo     string   `json:"repo,omitempty"`
	Number   int      `json:"number,omitempty"`
}

// Event is one atomic tracker occurrence. Sequence is monotonically
// increasing within WorkflowID and is the only ordering source of truth;
// timestamps may tie or be skewed across providers.
type Event struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Provider   Provider       `json:"provider"`
	Type       string         `json:"type"`
	WorkflowID string         `json:"workflowId"`
	Sequence   int            `json:"sequence"`
	Actor      Actor          `json:"actor"`
	Entity     EntityRef      `json:"entity"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// GitHubLink ties a workflow to its pull request, when one exists.
type GitHubLink struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	PRNumber int    `json:"prNumber"`
}

// Workflow is the unit of work linking an issue-tracker item to at most one
// pull request. Lifecycle status is derived per analysis, never stored here.
type Workflow struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	IssueKey string      `json:"issueKey"`
	GitHub   *GitHubLink `json:"github,omitempty"`
}
