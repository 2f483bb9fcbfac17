package workflow

import (
	"fmt"
	"sort"

	"flowradar/internal/types"
)

// Group is one workflow together with its events in sequence order.
type Group struct {
	Workflow types.Workflow `json:"workflow"`
	Events   []types.Event  `json:"events"`
}

// Aggregate groups events by workflow id and sorts each group by sequence
// ascending. Ordering never falls back to timestamps; sequence numbers are
// assigned at ingest and survive clock skew between providers.
//
// Workflows with no events still produce a group. An event referencing a
// workflow id outside the supplied list, or two events sharing a
// (workflowId, sequence) pair under different event ids, fail the whole call
// with a MalformedEventError. Pure and deterministic; every input event
// appears in the output exactly once.
func Aggregate(workflows []types.Workflow, events []types.Event) ([]Group, error) {
	known := make(map[string]int, len(workflows))
	groups := make([]Group, len(workflows))
	for i, wf := range workflows {
		if _, dup := known[wf.ID]; dup {
			return nil, &types.MalformedEventError{Reason: fmt.Sprintf("duplicate workflow id %q", wf.ID)}
		}
		known[wf.ID] = i
		groups[i] = Group{Workflow: wf}
	}

	seqOwner := make(map[string]string, len(events))
	for _, ev := range events {
		idx, ok := known[ev.WorkflowID]
		if !ok {
			return nil, &types.MalformedEventError{
				Reason: fmt.Sprintf("event %q references unknown workflow %q", ev.ID, ev.WorkflowID),
			}
		}
		key := fmt.Sprintf("%s#%d", ev.WorkflowID, ev.Sequence)
		if owner, seen := seqOwner[key]; seen && owner != ev.ID {
			return nil, &types.MalformedEventError{
				Reason: fmt.Sprintf("events %q and %q share sequence %d in workflow %q", owner, ev.ID, ev.Sequence, ev.WorkflowID),
			}
		}
		seqOwner[key] = ev.ID
		groups[idx].Events = append(groups[idx].Events, ev)
	}

	for i := range groups {
		evs := groups[i].Events
		sort.SliceStable(evs, func(a, b int) bool { return evs[a].Sequence < evs[b].Sequence })
	}
	return groups, nil
}
