package awareness

import (
	"context"
	"strings"
	"testing"

	"github.com/rcliao/agent-awareness/internal/model"
	"github.com/rcliao/agent-awareness/internal/store"
)

func TestRecordOutcomeHints(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	cases := []struct {
		score    float64
		wantHint string
	}{
		{0.9, "successful pattern"},
		{0.8, "successful pattern"},
		{0.5, ""},
		{0.3, "failure pattern"},
		{0.1, "failure pattern"},
	}
	for _, c := range cases {
		receipt, err := svc.RecordOutcome(ctx, "deploy", "ok", "ok", c.score, "")
		if err != nil {
			t.Fatalf("record outcome: %v", err)
		}
		switch {
		case c.wantHint == "" && receipt.LearningRecommendation != "":
			t.Errorf("score %v: expected no hint, got %q", c.score, receipt.LearningRecommendation)
		case c.wantHint != "" && !strings.Contains(receipt.LearningRecommendation, c.wantHint):
			t.Errorf("score %v: expected hint about %q, got %q", c.score, c.wantHint, receipt.LearningRecommendation)
		}
		if receipt.OutcomeID == 0 {
			t.Error("expected assigned outcome id")
		}
	}
}

func TestRecordOutcomeSignificanceEqualsScore(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	svc.RecordOutcome(ctx, "a", "", "", 0.15, "")

	events, _ := s.EventsByType(ctx, store.EventFilter{Type: model.EventActionOutcome})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	// A hard failure is as memorable as a hard success
	if events[0].Significance != 0.15 {
		t.Errorf("expected significance 0.15, got %v", events[0].Significance)
	}
}

func TestSimilarActionsRanking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	svc.RecordOutcome(ctx, "fix bug in parser", "parse ok", "parse ok", 0.9, "")
	svc.RecordOutcome(ctx, "deploy to production", "healthy", "rollback", 0.2, "")

	results, err := svc.SimilarActions(ctx, "fix bug in parser", 5)
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected deploy excluded below cutoff, got %d results", len(results))
	}
	if results[0].Action != "fix bug in parser" {
		t.Errorf("unexpected top match %q", results[0].Action)
	}
	if results[0].Relevance != 1.0 {
		t.Errorf("expected relevance 1.0, got %v", results[0].Relevance)
	}
	if results[0].Outcome != "parse ok" || results[0].SuccessScore != 0.9 {
		t.Errorf("match fields not populated: %+v", results[0])
	}
}

func TestSimilarActionsPartialOverlap(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	svc.RecordOutcome(ctx, "refactor parser module", "", "cleaner", 0.7, "")
	svc.RecordOutcome(ctx, "update parser docs", "", "done", 0.6, "")

	results, err := svc.SimilarActions(ctx, "refactor the parser", 5)
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected both parser actions, got %d", len(results))
	}
	// 2/3 tokens beat 1/3 ("the" matches nothing, "parser" matches both)
	if results[0].Action != "refactor parser module" {
		t.Errorf("expected higher-overlap action first, got %q", results[0].Action)
	}
	if results[0].Relevance <= results[1].Relevance {
		t.Errorf("expected descending relevance, got %v then %v", results[0].Relevance, results[1].Relevance)
	}
}

func TestSimilarActionsSubstringTokens(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Token-in-token containment counts: "fix" matches inside "prefix"
	svc.RecordOutcome(ctx, "add prefix handling", "", "", 0.5, "")

	results, err := svc.SimilarActions(ctx, "fix", 5)
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected substring containment match, got %d", len(results))
	}
}

func TestSimilarActionsLimitAndEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := 0; i < 4; i++ {
		svc.RecordOutcome(ctx, "rotate credentials", "", "", 0.5, "")
	}

	results, err := svc.SimilarActions(ctx, "rotate credentials", 2)
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected limit 2, got %d", len(results))
	}

	none, err := svc.SimilarActions(ctx, "completely unrelated thing", 5)
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}
