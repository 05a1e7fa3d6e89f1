package awareness

import (
	"context"
	"strings"
	"testing"

	"github.com/rcliao/agent-awareness/internal/model"
	"github.com/rcliao/agent-awareness/internal/store"
)

func TestStartSessionBriefing(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	svc.SetIdentity(ctx, IdentityUpdate{Name: "Atlas"})
	svc.RecordGap(ctx, "dns", "ttl", 0.9)
	svc.RecordGap(ctx, "bgp", "communities", 0.3) // below the 0.5 briefing floor
	g, _ := s.CreateGoal(ctx, "ship v1", "", "active")
	s.CreateTask(ctx, store.CreateTaskParams{Title: "docs", GoalID: g.ID})

	briefing, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("session start: %v", err)
	}

	if briefing.Greeting != "Session started. I am Atlas." {
		t.Errorf("unexpected greeting %q", briefing.Greeting)
	}
	if briefing.SessionID == "" {
		t.Error("expected session id")
	}
	if briefing.Identity.Name != "Atlas" {
		t.Errorf("expected identity in briefing, got %q", briefing.Identity.Name)
	}
	if len(briefing.KnowledgeGaps) != 1 || briefing.KnowledgeGaps[0].Domain != "dns" {
		t.Errorf("expected only the severe gap, got %+v", briefing.KnowledgeGaps)
	}
	if len(briefing.Context.ActiveGoals) != 1 {
		t.Errorf("expected context in briefing, got %+v", briefing.Context)
	}
	if briefing.Environment.Platform == "" || briefing.Environment.RuntimeVersion == "" {
		t.Errorf("expected environment facts, got %+v", briefing.Environment)
	}
	if briefing.StartedAt == "" {
		t.Error("expected start timestamp")
	}
}

func TestStartSessionWritesExactlyOneMarker(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	// Works against a completely empty store
	if _, err := svc.StartSession(ctx); err != nil {
		t.Fatalf("session start: %v", err)
	}
	if _, err := svc.StartSession(ctx); err != nil {
		t.Fatalf("second session start: %v", err)
	}

	markers, err := s.EventsByType(ctx, store.EventFilter{Type: model.EventSessionStart})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(markers) != 2 {
		t.Fatalf("expected one marker per call, got %d", len(markers))
	}
	for _, m := range markers {
		if m.Significance != 0.3 {
			t.Errorf("expected marker significance 0.3, got %v", m.Significance)
		}
		var p model.SessionStartPayload
		if err := m.Decode(&p); err != nil || p.SessionID == "" {
			t.Errorf("marker payload missing session id: %+v", p)
		}
	}
}

func TestStartSessionGapsCappedAtFive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := 0; i < 8; i++ {
		svc.RecordGap(ctx, "domain", "desc", 0.9)
	}

	briefing, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("session start: %v", err)
	}
	if len(briefing.KnowledgeGaps) != 5 {
		t.Errorf("expected top 5 gaps, got %d", len(briefing.KnowledgeGaps))
	}
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	receipt, err := svc.EndSession(ctx, "migrated the schema")
	if err != nil {
		t.Fatalf("session end: %v", err)
	}
	if !receipt.SummarySaved {
		t.Error("expected summary_saved true")
	}
	if receipt.Status != "session_ended" {
		t.Errorf("unexpected status %q", receipt.Status)
	}

	events, _ := s.EventsByType(ctx, store.EventFilter{Type: model.EventSessionEnd})
	if len(events) != 1 {
		t.Fatalf("expected 1 session_end event, got %d", len(events))
	}
	if events[0].Significance != 0.5 {
		t.Errorf("expected significance 0.5, got %v", events[0].Significance)
	}
	var p model.SessionEndPayload
	events[0].Decode(&p)
	if p.Summary != "migrated the schema" || p.Timestamp == "" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestEndSessionEmptySummary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	receipt, err := svc.EndSession(ctx, "")
	if err != nil {
		t.Fatalf("session end: %v", err)
	}
	if receipt.SummarySaved {
		t.Error("expected summary_saved false for empty summary")
	}
}

func TestSessionIDsAreULIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Back-to-back starts land in the same millisecond; the shared
	// entropy source must still yield distinct ids.
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		b, err := svc.StartSession(ctx)
		if err != nil {
			t.Fatalf("session start: %v", err)
		}
		if len(b.SessionID) != 26 || strings.ContainsAny(b.SessionID, "ILOU") {
			t.Errorf("unexpected session id %q", b.SessionID)
		}
		if seen[b.SessionID] {
			t.Errorf("duplicate session id %q", b.SessionID)
		}
		seen[b.SessionID] = true
	}
}
