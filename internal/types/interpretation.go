package types

import "time"

// Frequency is how often a radar checks its topic.
type Frequency string

const (
	FrequencyHourly  Frequency = "hourly"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// NotifyCondition is when a radar notifies its owner.
type NotifyCondition string

const (
	NotifyAlways            NotifyCondition = "always"
	NotifySignificantChange NotifyCondition = "significant_change"
	NotifyThreshold         NotifyCondition = "threshold"
	NotifyNever             NotifyCondition = "never"
)

// NotifyOptionCount is the exact number of When.Options an interpretation
// must carry. The consuming picker renders a fixed three-choice control, so
// any other count is rejected outright.
const NotifyOptionCount = 3

type InterpretationWhat struct {
	Topic       string  `json:"topic"`
	Description string  `json:"description"`
	IsValid     bool    `json:"isValid"`
	Confidence  float64 `json:"confidence"`
}

type NotifyOption struct {
	Label         string `json:"label"`
	Value         string `json:"value"`
	IsRecommended bool   `json:"isRecommended"`
}

type InterpretationWhen struct {
	Frequency       Frequency       `json:"frequency"`
	Schedule        string          `json:"schedule,omitempty"`
	NotifyCondition NotifyCondition `json:"notifyCondition"`
	Options         []NotifyOption  `json:"options"`
}

type InterpretationWhy struct {
	Intent            string   `json:"intent"`
	SuggestedInsights []string `json:"suggestedInsights"`
}

// InterpretationResult is the structured radar spec derived from free text.
// All three groups are always present; when What.IsValid is false the When
// and Why groups are advisory, but still have to validate structurally.
type InterpretationResult struct {
	What InterpretationWhat `json:"what"`
	When InterpretationWhen `json:"when"`
	Why  InterpretationWhy  `json:"why"`
}

// RadarSpec is a stored, validated interpretation ready to back a
// monitoring job.
type RadarSpec struct {
	ID        string               `json:"id"`
	Input     string               `json:"input"`
	Result    InterpretationResult `json:"result"`
	CreatedAt time.Time            `json:"createdAt"`
}
