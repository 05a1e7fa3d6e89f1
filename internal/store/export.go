package store

import (
	"context"

	"github.com/rcliao/agent-awareness/internal/model"
)

// Export is a read-only dump of the durable memory tables.
type Export struct {
	Facts  []model.Fact  `json:"facts"`
	Events []model.Event `json:"events"`
}

// ExportAll returns all semantic facts and the full episodic log, in
// insertion order.
func (s *SQLiteStore) ExportAll(ctx context.Context) (*Export, error) {
	out := &Export{}

	rows, err := s.db.QueryContext(ctx,
		`SELECT concept, definition, confidence FROM semantic_memory ORDER BY concept`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var f model.Fact
		if err := rows.Scan(&f.Concept, &f.Definition, &f.Confidence); err != nil {
			return nil, err
		}
		out.Facts = append(out.Facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	events, err := s.queryEvents(ctx,
		`SELECT id, event_type, content, significance, created_at FROM episodic_memory ORDER BY id`)
	if err != nil {
		return nil, err
	}
	out.Events = events

	return out, nil
}
