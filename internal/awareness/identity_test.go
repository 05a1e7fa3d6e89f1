package awareness

import (
	"context"
	"reflect"
	"testing"
)

func TestIdentityDefaultsWhenUnset(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.Identity(ctx)
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if id != defaultIdentity {
		t.Errorf("expected full defaults, got %+v", id)
	}
}

func TestSetIdentityPartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	updated, err := svc.SetIdentity(ctx, IdentityUpdate{Name: "Atlas", Purpose: "Keep the maps current"})
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if !reflect.DeepEqual(updated, []string{"name", "purpose"}) {
		t.Errorf("expected [name purpose], got %v", updated)
	}

	id, _ := svc.Identity(ctx)
	if id.Name != "Atlas" {
		t.Errorf("expected 'Atlas', got %q", id.Name)
	}
	if id.Purpose != "Keep the maps current" {
		t.Errorf("expected custom purpose, got %q", id.Purpose)
	}
	// Untouched fields still come from defaults
	if id.Capabilities != defaultIdentity.Capabilities {
		t.Errorf("expected default capabilities, got %q", id.Capabilities)
	}
	if id.Personality != defaultIdentity.Personality {
		t.Errorf("expected default personality, got %q", id.Personality)
	}
}

func TestSetIdentityEmptyFieldsUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	svc.SetIdentity(ctx, IdentityUpdate{Name: "Atlas"})

	// An empty name must not clear the stored one
	updated, err := svc.SetIdentity(ctx, IdentityUpdate{Personality: "Curt"})
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if !reflect.DeepEqual(updated, []string{"personality"}) {
		t.Errorf("expected [personality], got %v", updated)
	}

	id, _ := svc.Identity(ctx)
	if id.Name != "Atlas" {
		t.Errorf("expected name preserved, got %q", id.Name)
	}
	if id.Personality != "Curt" {
		t.Errorf("expected 'Curt', got %q", id.Personality)
	}
}

func TestSetIdentityNoFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	updated, err := svc.SetIdentity(ctx, IdentityUpdate{})
	if err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if len(updated) != 0 {
		t.Errorf("expected no updates, got %v", updated)
	}
}

func TestSetIdentityFullConfidence(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService(t)

	svc.SetIdentity(ctx, IdentityUpdate{Name: "Atlas"})

	facts, _ := s.Facts(ctx, "agent_name")
	if facts["agent_name"].Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", facts["agent_name"].Confidence)
	}
}
