package awareness

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rcliao/agent-awareness/internal/model"
	"github.com/rcliao/agent-awareness/internal/store"
)

// Outcome retrieval policy. Significance equals the success score, so
// strong failures are as memorable as strong successes. The scan is
// capped at the most recent outcomes rather than the full log.
const (
	successPatternFloor = 0.8
	failurePatternCeil  = 0.3
	outcomeScanWindow   = 50
	relevanceCutoff     = 0.2
	defaultSimilarLimit = 5
)

// OutcomeReceipt is the result of recording an action outcome.
type OutcomeReceipt struct {
	OutcomeID              int64   `json:"outcome_id"`
	SuccessScore           float64 `json:"success_score"`
	LearningRecommendation string  `json:"learning_recommendation"`
}

// SimilarAction is one ranked match from past action outcomes.
type SimilarAction struct {
	Action       string  `json:"action"`
	Outcome      string  `json:"outcome"`
	SuccessScore float64 `json:"success_score"`
	Relevance    float64 `json:"relevance"`
}

// RecordOutcome appends an action_outcome event. The success score is
// stored as the event's significance and taken as-is; callers own the
// [0,1] domain.
func (s *Service) RecordOutcome(ctx context.Context, action, expected, actual string, successScore float64, taskContext string) (*OutcomeReceipt, error) {
	ev, err := s.store.AppendEvent(ctx, store.AppendEventParams{
		Type: model.EventActionOutcome,
		Payload: model.OutcomePayload{
			Action:       action,
			Expected:     expected,
			Actual:       actual,
			SuccessScore: successScore,
			Context:      taskContext,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		},
		Significance: successScore,
	})
	if err != nil {
		return nil, err
	}

	var hint string
	switch {
	case successScore >= successPatternFloor:
		hint = "Consider adding this to procedural memory as a successful pattern."
	case successScore <= failurePatternCeil:
		hint = "Consider recording this failure pattern to avoid in future."
	}

	return &OutcomeReceipt{
		OutcomeID:              ev.ID,
		SuccessScore:           successScore,
		LearningRecommendation: hint,
	}, nil
}

// SimilarActions ranks recent action outcomes by lexical overlap with
// the description. Relevance is the fraction of query tokens appearing
// as substrings of the past action text; synonym matching is out of
// scope, and token-in-token matches ("fix" inside "prefix") count.
func (s *Service) SimilarActions(ctx context.Context, description string, limit int) ([]SimilarAction, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	tokens := strings.Fields(strings.ToLower(description))
	denom := len(tokens)
	if denom < 1 {
		denom = 1
	}

	events, err := s.store.RecentEventsByType(ctx, model.EventActionOutcome, outcomeScanWindow)
	if err != nil {
		return nil, err
	}

	results := []SimilarAction{}
	for _, ev := range events {
		var p model.OutcomePayload
		if err := ev.Decode(&p); err != nil {
			s.log.Warn("skipping undecodable outcome event")
			continue
		}

		actionText := strings.ToLower(p.Action)
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(actionText, tok) {
				hits++
			}
		}
		relevance := float64(hits) / float64(denom)
		if relevance <= relevanceCutoff {
			continue
		}

		results = append(results, SimilarAction{
			Action:       p.Action,
			Outcome:      p.Actual,
			SuccessScore: p.SuccessScore,
			Relevance:    relevance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
