package awareness

import (
	"context"

	"github.com/rcliao/agent-awareness/internal/model"
)

// Identity is the agent's self-model. Every field is always populated:
// values come from stored facts, with gaps filled from the defaults.
type Identity struct {
	Name         string `json:"agent_name"`
	Purpose      string `json:"agent_purpose"`
	Capabilities string `json:"agent_capabilities"`
	Limitations  string `json:"agent_limitations"`
	Personality  string `json:"agent_personality"`
}

// IdentityUpdate carries the fields to change. Empty fields are left
// untouched, never cleared.
type IdentityUpdate struct {
	Name         string `json:"agent_name,omitempty"`
	Purpose      string `json:"agent_purpose,omitempty"`
	Capabilities string `json:"agent_capabilities,omitempty"`
	Limitations  string `json:"agent_limitations,omitempty"`
	Personality  string `json:"agent_personality,omitempty"`
}

const (
	conceptName         = "agent_name"
	conceptPurpose      = "agent_purpose"
	conceptCapabilities = "agent_capabilities"
	conceptLimitations  = "agent_limitations"
	conceptPersonality  = "agent_personality"
)

var defaultIdentity = Identity{
	Name:         "Agentic Assistant",
	Purpose:      "Help user accomplish their goals effectively",
	Capabilities: "Memory, goal tracking, learning, self-improvement",
	Limitations:  "Cannot access internet, cannot execute code without approval",
	Personality:  "Helpful, transparent, collaborative",
}

// Identity resolves the agent's self-model: stored facts first, then
// the constant defaults for anything unset.
func (s *Service) Identity(ctx context.Context) (Identity, error) {
	facts, err := s.store.Facts(ctx,
		conceptName, conceptPurpose, conceptCapabilities, conceptLimitations, conceptPersonality)
	if err != nil {
		return Identity{}, err
	}

	id := defaultIdentity
	if f, ok := facts[conceptName]; ok {
		id.Name = f.Definition
	}
	if f, ok := facts[conceptPurpose]; ok {
		id.Purpose = f.Definition
	}
	if f, ok := facts[conceptCapabilities]; ok {
		id.Capabilities = f.Definition
	}
	if f, ok := facts[conceptLimitations]; ok {
		id.Limitations = f.Definition
	}
	if f, ok := facts[conceptPersonality]; ok {
		id.Personality = f.Definition
	}
	return id, nil
}

// SetIdentity upserts the provided fields as semantic facts with
// confidence 1.0: identity set explicitly by the user is maximally
// trusted. Returns the names of the fields actually updated.
func (s *Service) SetIdentity(ctx context.Context, u IdentityUpdate) ([]string, error) {
	fields := []struct {
		name    string
		concept string
		value   string
	}{
		{"name", conceptName, u.Name},
		{"purpose", conceptPurpose, u.Purpose},
		{"capabilities", conceptCapabilities, u.Capabilities},
		{"limitations", conceptLimitations, u.Limitations},
		{"personality", conceptPersonality, u.Personality},
	}

	updated := []string{}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		err := s.store.UpsertFact(ctx, model.Fact{
			Concept:    f.concept,
			Definition: f.value,
			Confidence: 1.0,
		})
		if err != nil {
			return updated, err
		}
		updated = append(updated, f.name)
	}
	return updated, nil
}
