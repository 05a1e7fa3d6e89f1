package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rcliao/agent-awareness/internal/model"
)

// AppendEvent inserts one row into the episodic log. The payload is
// serialized to JSON; the assigned id and created_at come back on the
// returned event. Events are never updated or deleted after this.
func (s *SQLiteStore) AppendEvent(ctx context.Context, p AppendEventParams) (*model.Event, error) {
	if !p.Type.Valid() {
		return nil, fmt.Errorf("invalid event type %q", p.Type)
	}

	content, err := json.Marshal(p.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode event payload: %w", err)
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO episodic_memory (event_type, content, significance, created_at) VALUES (?, ?, ?, ?)`,
		string(p.Type), string(content), p.Significance, now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("event id: %w", err)
	}

	return &model.Event{
		ID:           id,
		Type:         p.Type,
		Content:      string(content),
		Significance: p.Significance,
		CreatedAt:    now,
	}, nil
}

// EventsByType returns events of one type at or above the significance
// floor, most significant first.
func (s *SQLiteStore) EventsByType(ctx context.Context, f EventFilter) ([]model.Event, error) {
	query := `SELECT id, event_type, content, significance, created_at
	          FROM episodic_memory
	          WHERE event_type = ? AND significance >= ?
	          ORDER BY significance DESC`
	args := []interface{}{string(f.Type), f.MinSignificance}
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}
	return s.queryEvents(ctx, query, args...)
}

// RecentEvents returns events with significance strictly above minSig,
// newest first. Recency follows the monotonic id: it is assigned in
// insert order, while the timestamp strings have variable fraction
// widths and don't compare lexicographically within a second.
func (s *SQLiteStore) RecentEvents(ctx context.Context, minSig float64, limit int) ([]model.Event, error) {
	return s.queryEvents(ctx,
		`SELECT id, event_type, content, significance, created_at
		 FROM episodic_memory
		 WHERE significance > ?
		 ORDER BY id DESC LIMIT ?`,
		minSig, limit)
}

// RecentEventsByType returns the newest events of one type. This is the
// bounded scan behind experience retrieval.
func (s *SQLiteStore) RecentEventsByType(ctx context.Context, t model.EventType, limit int) ([]model.Event, error) {
	return s.queryEvents(ctx,
		`SELECT id, event_type, content, significance, created_at
		 FROM episodic_memory
		 WHERE event_type = ?
		 ORDER BY id DESC LIMIT ?`,
		string(t), limit)
}

func (s *SQLiteStore) queryEvents(ctx context.Context, query string, args ...interface{}) ([]model.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var typ, createdAt string
		if err := rows.Scan(&e.ID, &typ, &e.Content, &e.Significance, &createdAt); err != nil {
			return nil, err
		}
		e.Type = model.EventType(typ)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}
