package workflow

import (
	"errors"
	"testing"
	"time"

	"flowradar/internal/types"
)

func wf(id string) types.Workflow {
	return types.Workflow{ID: id, Name: "Workflow " + id, IssueKey: "PROJ-1"}
}

func ev(id, wfID string, seq int) types.Event {
	return types.Event{
		ID:         id,
		Timestamp:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Provider:   types.ProviderJira,
		Type:       "comment",
		WorkflowID: wfID,
		Sequence:   seq,
		Actor:      types.Actor{ID: "u1", Name: "Dana", Kind: types.ActorKindHuman},
	}
}

func TestAggregate_SortsBySequence(t *testing.T) {
	groups, err := Aggregate(
		[]types.Workflow{wf("wf-1")},
		[]types.Event{ev("e2", "wf-1", 2), ev("e1", "wf-1", 1)},
	)
	if err != nil {
		t.Fatalf("aggregate error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	got := groups[0].Events
	if len(got) != 2 || got[0].Sequence != 1 || got[1].Sequence != 2 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestAggregate_IgnoresTimestampOrder(t *testing.T) {
	early := ev("e1", "wf-1", 2)
	early.Timestamp = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := ev("e2", "wf-1", 1)
	late.Timestamp = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	groups, err := Aggregate([]types.Workflow{wf("wf-1")}, []types.Event{early, late})
	if err != nil {
		t.Fatalf("aggregate error: %v", err)
	}
	got := groups[0].Events
	if got[0].ID != "e2" || got[1].ID != "e1" {
		t.Fatalf("expected sequence order to win over timestamps, got %+v", got)
	}
}

func TestAggregate_NoEventDroppedOrDuplicated(t *testing.T) {
	events := []types.Event{
		ev("a", "wf-1", 3), ev("b", "wf-2", 1), ev("c", "wf-1", 1), ev("d", "wf-1", 2),
	}
	groups, err := Aggregate([]types.Workflow{wf("wf-1"), wf("wf-2")}, events)
	if err != nil {
		t.Fatalf("aggregate error: %v", err)
	}
	seen := map[string]int{}
	total := 0
	for _, g := range groups {
		for _, e := range g.Events {
			seen[e.ID]++
			total++
		}
	}
	if total != len(events) {
		t.Fatalf("expected %d events out, got %d", len(events), total)
	}
	for _, e := range events {
		if seen[e.ID] != 1 {
			t.Fatalf("event %q appears %d times", e.ID, seen[e.ID])
		}
	}
}

func TestAggregate_EmptyWorkflowKeepsGroup(t *testing.T) {
	groups, err := Aggregate([]types.Workflow{wf("wf-1"), wf("wf-2")}, []types.Event{ev("e1", "wf-1", 1)})
	if err != nil {
		t.Fatalf("aggregate error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[1].Events) != 0 {
		t.Fatalf("expected empty group for wf-2, got %d events", len(groups[1].Events))
	}
}

func TestAggregate_UnknownWorkflowFails(t *testing.T) {
	_, err := Aggregate([]types.Workflow{wf("wf-1")}, []types.Event{ev("e1", "wf-9", 1)})
	var mErr *types.MalformedEventError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedEventError, got %v", err)
	}
}

func TestAggregate_ConflictingSequenceFails(t *testing.T) {
	_, err := Aggregate(
		[]types.Workflow{wf("wf-1")},
		[]types.Event{ev("e1", "wf-1", 1), ev("e2", "wf-1", 1)},
	)
	var mErr *types.MalformedEventError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedEventError, got %v", err)
	}
}
