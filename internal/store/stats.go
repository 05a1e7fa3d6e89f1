package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string           `json:"db_path"`
	DBSizeBytes   int64            `json:"db_size_bytes"`
	Facts         int              `json:"facts"`
	Events        int              `json:"events"`
	Goals         int              `json:"goals"`
	Tasks         int              `json:"tasks"`
	WorkingMemory int              `json:"working_memory"`
	DanglingTasks int64            `json:"dangling_tasks_seen"`
	EventTypes    []EventTypeStats `json:"event_types"`
}

// EventTypeStats holds per-event-type counts.
type EventTypeStats struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, DanglingTasks: s.danglingTasks.Load()}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM semantic_memory`).Scan(&st.Facts)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM episodic_memory`).Scan(&st.Events)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&st.Goals)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&st.Tasks)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM working_memory`).Scan(&st.WorkingMemory)

	rows, err := s.db.QueryContext(ctx, `
		SELECT event_type, COUNT(*) as cnt
		FROM episodic_memory
		GROUP BY event_type ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var et EventTypeStats
		rows.Scan(&et.Type, &et.Count)
		st.EventTypes = append(st.EventTypes, et)
	}

	return st, nil
}
