package awareness

import (
	"context"
	"time"

	"github.com/rcliao/agent-awareness/internal/model"
)

// Snapshot limits. The aggregator is a bounded best-effort read, not a
// full dump.
const (
	maxContextGoals    = 5
	maxPendingTasks    = 10
	maxInProgressTasks = 5
	maxRecentEvents    = 5
	maxWorkingEntries  = 10
	significanceCutoff = 0.6
)

// ContextEvent is one recent significant episode in a snapshot.
type ContextEvent struct {
	Type    model.EventType `json:"type"`
	Content string          `json:"content"`
	When    time.Time       `json:"when"`
}

// ContextEntry is one live working-context entry in a snapshot.
type ContextEntry struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}

// Context is the current situational snapshot. Absent data shows up as
// empty collections, never as an error.
type Context struct {
	ActiveGoals   []model.Goal   `json:"active_goals"`
	PendingTasks  []model.Task   `json:"pending_tasks"`
	InProgress    []model.Task   `json:"in_progress_tasks"`
	RecentEvents  []ContextEvent `json:"recent_significant_events"`
	ActiveContext []ContextEntry `json:"active_context"`
	RetrievedAt   time.Time      `json:"retrieved_at"`
}

// CurrentContext assembles the situational snapshot: active goals,
// pending and in-progress tasks joined to their goals, recent
// high-significance episodes, and live working-context entries.
func (s *Service) CurrentContext(ctx context.Context) (*Context, error) {
	goals, err := s.store.ActiveGoals(ctx, maxContextGoals)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.TasksByStatus(ctx, "pending", maxPendingTasks)
	if err != nil {
		return nil, err
	}

	inProgress, err := s.store.TasksByStatus(ctx, "in_progress", maxInProgressTasks)
	if err != nil {
		return nil, err
	}

	events, err := s.store.RecentEvents(ctx, significanceCutoff, maxRecentEvents)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries, err := s.store.LiveWorkingEntries(ctx, now, maxWorkingEntries)
	if err != nil {
		return nil, err
	}

	snap := &Context{
		ActiveGoals:   []model.Goal{},
		PendingTasks:  []model.Task{},
		InProgress:    []model.Task{},
		RecentEvents:  []ContextEvent{},
		ActiveContext: []ContextEntry{},
		RetrievedAt:   now.UTC(),
	}
	snap.ActiveGoals = append(snap.ActiveGoals, goals...)
	snap.PendingTasks = append(snap.PendingTasks, pending...)
	snap.InProgress = append(snap.InProgress, inProgress...)
	for _, ev := range events {
		snap.RecentEvents = append(snap.RecentEvents, ContextEvent{
			Type:    ev.Type,
			Content: ev.Content,
			When:    ev.CreatedAt,
		})
	}
	for _, e := range entries {
		snap.ActiveContext = append(snap.ActiveContext, ContextEntry{Key: e.Key, Content: e.Content})
	}

	return snap, nil
}
