package awareness

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/agent-awareness/internal/model"
	"github.com/rcliao/agent-awareness/internal/store"
)

// Fixed significances for session lifecycle markers. Start markers sit
// below the context aggregator's cutoff so routine starts don't crowd
// the briefing; end markers carry the summary and sit at the middle.
const (
	sessionStartSignificance = 0.3
	sessionEndSignificance   = 0.5
	briefingGapSeverity      = 0.5
	briefingGapLimit         = 5
)

// Briefing is the composite session-start result.
type Briefing struct {
	SessionID     string   `json:"session_id"`
	Greeting      string   `json:"greeting"`
	Identity      Identity `json:"identity"`
	Context       *Context `json:"current_context"`
	Environment   EnvInfo  `json:"environment"`
	KnowledgeGaps []Gap    `json:"knowledge_gaps"`
	StartedAt     string   `json:"session_started_at"`
}

// SessionEndReceipt is the result of ending a session.
type SessionEndReceipt struct {
	Status       string `json:"status"`
	SummarySaved bool   `json:"summary_saved"`
	Message      string `json:"message"`
}

// StartSession recovers context for a new session: identity, the
// situational snapshot, environment facts, and the most severe open
// gaps. It then appends one session_start marker event. The reads run
// first; if the store is down the whole call fails before the write.
func (s *Service) StartSession(ctx context.Context) (*Briefing, error) {
	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}

	snap, err := s.CurrentContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	env := s.env.Info()

	gaps, err := s.ListGaps(ctx, briefingGapSeverity)
	if err != nil {
		return nil, fmt.Errorf("load gaps: %w", err)
	}
	if len(gaps) > briefingGapLimit {
		gaps = gaps[:briefingGapLimit]
	}

	now := time.Now().UTC()
	sessionID := ulid.MustNew(ulid.Timestamp(now), s.entropy).String()

	_, err = s.store.AppendEvent(ctx, store.AppendEventParams{
		Type: model.EventSessionStart,
		Payload: model.SessionStartPayload{
			SessionID: sessionID,
			Timestamp: now.Format(time.RFC3339),
		},
		Significance: sessionStartSignificance,
	})
	if err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}

	name := identity.Name
	if name == "" {
		name = "your assistant"
	}

	return &Briefing{
		SessionID:     sessionID,
		Greeting:      fmt.Sprintf("Session started. I am %s.", name),
		Identity:      identity,
		Context:       snap,
		Environment:   env,
		KnowledgeGaps: gaps,
		StartedAt:     now.Format(time.RFC3339),
	}, nil
}

// EndSession appends a session_end marker carrying the summary. This is
// the only durable side effect; nothing is read.
func (s *Service) EndSession(ctx context.Context, summary string) (*SessionEndReceipt, error) {
	_, err := s.store.AppendEvent(ctx, store.AppendEventParams{
		Type: model.EventSessionEnd,
		Payload: model.SessionEndPayload{
			Summary:   summary,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Significance: sessionEndSignificance,
	})
	if err != nil {
		return nil, fmt.Errorf("record session end: %w", err)
	}

	return &SessionEndReceipt{
		Status:       "session_ended",
		SummarySaved: summary != "",
		Message:      "Context preserved for next session",
	}, nil
}
