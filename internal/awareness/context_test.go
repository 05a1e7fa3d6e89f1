package awareness

import (
	"context"
	"testing"

	"github.com/rcliao/agent-awareness/internal/store"
)

func TestCurrentContextEmptyStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	snap, err := svc.CurrentContext(ctx)
	if err != nil {
		t.Fatalf("context must not fail on empty store: %v", err)
	}
	if snap.ActiveGoals == nil || snap.PendingTasks == nil || snap.InProgress == nil ||
		snap.RecentEvents == nil || snap.ActiveContext == nil {
		t.Error("expected empty collections, not nil")
	}
	if snap.RetrievedAt.IsZero() {
		t.Error("expected retrieval timestamp")
	}
}

func TestCurrentContextAssemblesAllSections(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	g, _ := s.CreateGoal(ctx, "ship v1", "", "active")
	s.CreateTask(ctx, store.CreateTaskParams{Title: "write docs", Priority: 3, GoalID: g.ID})
	s.CreateTask(ctx, store.CreateTaskParams{Title: "fix tests", Priority: 7, GoalID: g.ID})
	s.CreateTask(ctx, store.CreateTaskParams{Title: "review PR", Status: "in_progress", GoalID: g.ID})
	s.PutWorkingEntry(ctx, store.PutWorkingEntryParams{Key: "branch", Content: "release-1.0", Priority: 5, TTL: "1h"})
	svc.RecordGap(ctx, "ci", "flaky runner", 0.8) // significance 0.8 > 0.6 cutoff

	snap, err := svc.CurrentContext(ctx)
	if err != nil {
		t.Fatalf("context: %v", err)
	}

	if len(snap.ActiveGoals) != 1 || snap.ActiveGoals[0].Name != "ship v1" {
		t.Errorf("unexpected goals: %+v", snap.ActiveGoals)
	}
	if len(snap.PendingTasks) != 2 || snap.PendingTasks[0].Title != "fix tests" {
		t.Errorf("expected pending tasks by priority, got %+v", snap.PendingTasks)
	}
	if snap.PendingTasks[0].Goal != "ship v1" {
		t.Errorf("expected joined goal name, got %q", snap.PendingTasks[0].Goal)
	}
	if len(snap.InProgress) != 1 || snap.InProgress[0].Title != "review PR" {
		t.Errorf("unexpected in-progress tasks: %+v", snap.InProgress)
	}
	if len(snap.RecentEvents) != 1 {
		t.Errorf("expected 1 significant event, got %d", len(snap.RecentEvents))
	}
	if len(snap.ActiveContext) != 1 || snap.ActiveContext[0].Key != "branch" {
		t.Errorf("unexpected working context: %+v", snap.ActiveContext)
	}
}

func TestCurrentContextSignificanceCutoff(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Metacognitive snapshots record at 0.4 and the cutoff itself is
	// exclusive, so only the 0.8 gap should surface.
	svc.RecordState(ctx, 0.5, 0.5, 0.5, "")
	svc.RecordGap(ctx, "a", "at cutoff", 0.6)
	svc.RecordGap(ctx, "b", "above cutoff", 0.8)

	snap, err := svc.CurrentContext(ctx)
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if len(snap.RecentEvents) != 1 {
		t.Fatalf("expected only the 0.8 event, got %d", len(snap.RecentEvents))
	}
}

func TestCurrentContextGoalLimit(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	for i := 0; i < 7; i++ {
		s.CreateGoal(ctx, "goal", "", "active")
	}

	snap, _ := svc.CurrentContext(ctx)
	if len(snap.ActiveGoals) != 5 {
		t.Errorf("expected goal list capped at 5, got %d", len(snap.ActiveGoals))
	}
	// Newest ids first
	if snap.ActiveGoals[0].ID < snap.ActiveGoals[1].ID {
		t.Error("expected goals ordered newest id first")
	}
}
