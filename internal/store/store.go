// Package store provides the awareness storage interface and SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/rcliao/agent-awareness/internal/model"
)

// AppendEventParams holds parameters for appending an episodic event.
type AppendEventParams struct {
	Type         model.EventType
	Payload      interface{} // JSON-encoded into the content column
	Significance float64
}

// EventFilter selects episodic events for typed reads.
type EventFilter struct {
	Type            model.EventType
	MinSignificance float64
	Limit           int // 0 means no limit
}

// CreateTaskParams holds parameters for creating a task.
type CreateTaskParams struct {
	Title    string
	Priority int
	Status   string
	GoalID   int64
}

// PutWorkingEntryParams holds parameters for upserting a working-context entry.
type PutWorkingEntryParams struct {
	Key      string
	Content  string
	Priority int
	TTL      string // e.g. 7d, 24h, 30m, 60s
}

// Store defines the awareness storage interface. Every method runs in
// its own transaction; no connection state is held across calls.
type Store interface {
	// UpsertFact stores a semantic fact, replacing any existing fact
	// with the same concept.
	UpsertFact(ctx context.Context, f model.Fact) error

	// Facts returns the facts matching the given concepts. Missing
	// concepts are simply absent from the result.
	Facts(ctx context.Context, concepts ...string) (map[string]model.Fact, error)

	// AppendEvent appends one episodic event and returns it with its
	// assigned id and timestamp.
	AppendEvent(ctx context.Context, p AppendEventParams) (*model.Event, error)

	// EventsByType returns events of one type with significance >=
	// MinSignificance, ordered by significance descending.
	EventsByType(ctx context.Context, f EventFilter) ([]model.Event, error)

	// RecentEvents returns events of any type with significance
	// strictly greater than minSig, newest first, up to limit.
	RecentEvents(ctx context.Context, minSig float64, limit int) ([]model.Event, error)

	// RecentEventsByType returns the newest events of one type, up to
	// limit, newest first.
	RecentEventsByType(ctx context.Context, t model.EventType, limit int) ([]model.Event, error)

	// ActiveGoals returns goals with status active, newest id first.
	ActiveGoals(ctx context.Context, limit int) ([]model.Goal, error)

	// TasksByStatus returns tasks in the given status joined to their
	// owning goal's name. Tasks whose goal no longer exists are
	// excluded and counted, not returned as errors.
	TasksByStatus(ctx context.Context, status string, limit int) ([]model.Task, error)

	// LiveWorkingEntries returns unexpired working-context entries,
	// highest priority first.
	LiveWorkingEntries(ctx context.Context, now time.Time, limit int) ([]model.WorkingEntry, error)

	// CreateGoal creates a goal and returns it.
	CreateGoal(ctx context.Context, name, description, status string) (*model.Goal, error)

	// CreateTask creates a task under an existing goal.
	CreateTask(ctx context.Context, p CreateTaskParams) (*model.Task, error)

	// PutWorkingEntry upserts a working-context entry with a TTL.
	PutWorkingEntry(ctx context.Context, p PutWorkingEntryParams) (*model.WorkingEntry, error)

	// Close closes the store.
	Close() error
}
