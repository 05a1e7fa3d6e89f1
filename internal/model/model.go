// Package model defines the core awareness data types.
package model

import (
	"encoding/json"
	"time"
)

// Fact is a timeless piece of self-knowledge, keyed by concept.
// Writing an existing concept replaces it entirely.
type Fact struct {
	Concept    string  `json:"concept"`
	Definition string  `json:"definition"`
	Confidence float64 `json:"confidence"`
}

// EventType discriminates episodic event payloads.
type EventType string

const (
	EventKnowledgeGap  EventType = "knowledge_gap"
	EventSessionStart  EventType = "session_start"
	EventSessionEnd    EventType = "session_end"
	EventActionOutcome EventType = "action_outcome"
	EventMetacognitive EventType = "metacognitive_state"
)

// ValidEventTypes are the allowed episodic event types.
var ValidEventTypes = map[EventType]bool{
	EventKnowledgeGap:  true,
	EventSessionStart:  true,
	EventSessionEnd:    true,
	EventActionOutcome: true,
	EventMetacognitive: true,
}

// Valid reports whether t is a recognized event type.
func (t EventType) Valid() bool { return ValidEventTypes[t] }

// Event is one entry in the append-only episodic log. Content holds the
// JSON encoding of the payload type matching Type. Events are never
// mutated or deleted once written.
type Event struct {
	ID           int64     `json:"id"`
	Type         EventType `json:"event_type"`
	Content      string    `json:"content"`
	Significance float64   `json:"significance"`
	CreatedAt    time.Time `json:"created_at"`
}

// Decode unmarshals the event content into v.
func (e Event) Decode(v interface{}) error {
	return json.Unmarshal([]byte(e.Content), v)
}

// GapPayload is the content of a knowledge_gap event.
type GapPayload struct {
	Domain      string `json:"domain"`
	Description string `json:"description"`
}

// SessionStartPayload is the content of a session_start event.
type SessionStartPayload struct {
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// SessionEndPayload is the content of a session_end event.
type SessionEndPayload struct {
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}

// OutcomePayload is the content of an action_outcome event.
type OutcomePayload struct {
	Action       string  `json:"action"`
	Expected     string  `json:"expected"`
	Actual       string  `json:"actual"`
	SuccessScore float64 `json:"success_score"`
	Context      string  `json:"context,omitempty"`
	Timestamp    string  `json:"timestamp"`
}

// StatePayload is the content of a metacognitive_state event.
type StatePayload struct {
	Confidence       float64 `json:"confidence"`
	CognitiveLoad    float64 `json:"cognitive_load"`
	ReasoningQuality float64 `json:"reasoning_quality"`
	Notes            string  `json:"notes,omitempty"`
	Timestamp        string  `json:"timestamp"`
}

// Goal is a long-running objective. Goals are managed by the goal
// tracker; this core mostly reads them.
type Goal struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Task belongs to exactly one goal.
type Task struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Priority int    `json:"priority"`
	Status   string `json:"status"`
	GoalID   int64  `json:"goal_id"`
	Goal     string `json:"goal,omitempty"` // owning goal's name, set on joined reads
}

// ValidGoalStatuses are the allowed goal statuses.
var ValidGoalStatuses = map[string]bool{
	"active":    true,
	"completed": true,
	"abandoned": true,
}

// ValidTaskStatuses are the allowed task statuses.
var ValidTaskStatuses = map[string]bool{
	"pending":     true,
	"in_progress": true,
	"done":        true,
}

// WorkingEntry is a transient piece of context. It is visible to
// retrieval only while ExpiresAt is in the future.
type WorkingEntry struct {
	Key       string    `json:"key"`
	Content   string    `json:"content"`
	Priority  int       `json:"priority"`
	ExpiresAt time.Time `json:"expires_at"`
}
