package awareness

import (
	"context"
	"time"

	"github.com/rcliao/agent-awareness/internal/model"
	"github.com/rcliao/agent-awareness/internal/store"
)

// Metacognitive snapshots are pinned below the context aggregator's
// significance cutoff so self-monitoring noise stays out of the
// situational briefing. The warning thresholds are advisory only.
const (
	stateSignificance   = 0.4
	lowConfidence       = 0.4
	highCognitiveLoad   = 0.8
	lowReasoningQuality = 0.5
)

// StateReceipt is the result of recording a metacognitive state.
type StateReceipt struct {
	Recorded bool     `json:"recorded"`
	Warnings []string `json:"warnings"`
}

// RecordState appends a metacognitive_state event and derives advisory
// warnings from the fixed thresholds. Inputs are taken as-is; callers
// own the [0,1] domain.
func (s *Service) RecordState(ctx context.Context, confidence, cognitiveLoad, reasoningQuality float64, notes string) (*StateReceipt, error) {
	_, err := s.store.AppendEvent(ctx, store.AppendEventParams{
		Type: model.EventMetacognitive,
		Payload: model.StatePayload{
			Confidence:       confidence,
			CognitiveLoad:    cognitiveLoad,
			ReasoningQuality: reasoningQuality,
			Notes:            notes,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
		},
		Significance: stateSignificance,
	})
	if err != nil {
		return nil, err
	}

	warnings := []string{}
	if confidence < lowConfidence {
		warnings = append(warnings, "Low confidence - consider asking clarifying questions")
	}
	if cognitiveLoad > highCognitiveLoad {
		warnings = append(warnings, "High cognitive load - consider breaking task into smaller steps")
	}
	if reasoningQuality < lowReasoningQuality {
		warnings = append(warnings, "Reasoning quality concern - consider using sequential thinking")
	}

	return &StateReceipt{Recorded: true, Warnings: warnings}, nil
}
