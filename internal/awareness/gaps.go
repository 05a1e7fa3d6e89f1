package awareness

import (
	"context"
	"time"

	"github.com/rcliao/agent-awareness/internal/model"
	"github.com/rcliao/agent-awareness/internal/store"
)

// researchThreshold is the severity above which a recorded gap carries
// a research recommendation.
const researchThreshold = 0.7

// GapReceipt is the result of recording a knowledge gap.
type GapReceipt struct {
	GapID    int64   `json:"gap_id"`
	Domain   string  `json:"domain"`
	Severity float64 `json:"severity"`
	Action   string  `json:"action"`
}

// Gap is one recorded knowledge gap.
type Gap struct {
	ID          int64     `json:"id"`
	Domain      string    `json:"domain"`
	Description string    `json:"description"`
	Severity    float64   `json:"severity"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// RecordGap appends a knowledge_gap event. Severity doubles as the
// event's significance. Severity is taken as-is; callers own the [0,1]
// domain.
func (s *Service) RecordGap(ctx context.Context, domain, description string, severity float64) (*GapReceipt, error) {
	ev, err := s.store.AppendEvent(ctx, store.AppendEventParams{
		Type:         model.EventKnowledgeGap,
		Payload:      model.GapPayload{Domain: domain, Description: description},
		Significance: severity,
	})
	if err != nil {
		return nil, err
	}

	action := "noted"
	if severity > researchThreshold {
		action = "research_recommended"
	}

	return &GapReceipt{
		GapID:    ev.ID,
		Domain:   domain,
		Severity: severity,
		Action:   action,
	}, nil
}

// ListGaps returns recorded gaps with severity >= minSeverity, most
// severe first.
func (s *Service) ListGaps(ctx context.Context, minSeverity float64) ([]Gap, error) {
	events, err := s.store.EventsByType(ctx, store.EventFilter{
		Type:            model.EventKnowledgeGap,
		MinSignificance: minSeverity,
	})
	if err != nil {
		return nil, err
	}

	gaps := []Gap{}
	for _, ev := range events {
		var p model.GapPayload
		if err := ev.Decode(&p); err != nil {
			s.log.Warn("skipping undecodable gap event")
			continue
		}
		gaps = append(gaps, Gap{
			ID:          ev.ID,
			Domain:      p.Domain,
			Description: p.Description,
			Severity:    ev.Significance,
			RecordedAt:  ev.CreatedAt,
		})
	}
	return gaps, nil
}
