package store

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rcliao/agent-awareness/internal/model"
)

// LiveWorkingEntries returns entries whose expires_at is after now,
// highest priority first. Expired entries are invisible; no sweep is
// needed.
func (s *SQLiteStore) LiveWorkingEntries(ctx context.Context, now time.Time, limit int) ([]model.WorkingEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT context_key, content, priority, expires_at FROM working_memory
		 WHERE expires_at > ? ORDER BY priority DESC LIMIT ?`,
		now.UTC().Format(time.RFC3339), limit)
	if err != nil {
		return nil, fmt.Errorf("query working memory: %w", err)
	}
	defer rows.Close()

	var entries []model.WorkingEntry
	for rows.Next() {
		var e model.WorkingEntry
		var expiresAt string
		if err := rows.Scan(&e.Key, &e.Content, &e.Priority, &expiresAt); err != nil {
			return nil, err
		}
		e.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PutWorkingEntry upserts an entry keyed by context_key. An empty TTL
// defaults to one hour.
func (s *SQLiteStore) PutWorkingEntry(ctx context.Context, p PutWorkingEntryParams) (*model.WorkingEntry, error) {
	ttl := p.TTL
	if ttl == "" {
		ttl = "1h"
	}
	d, err := parseTTL(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid ttl: %w", err)
	}

	expiresAt := time.Now().UTC().Add(d)
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO working_memory (context_key, content, priority, expires_at) VALUES (?, ?, ?, ?)`,
		p.Key, p.Content, p.Priority, expiresAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("upsert working memory: %w", err)
	}

	return &model.WorkingEntry{
		Key:       p.Key,
		Content:   p.Content,
		Priority:  p.Priority,
		ExpiresAt: expiresAt,
	}, nil
}

// parseTTL parses a TTL string like "7d", "24h", "30m" into a time.Duration.
var ttlRegex = regexp.MustCompile(`^(\d+)([dhms])$`)

func parseTTL(s string) (time.Duration, error) {
	m := ttlRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid format %q (use e.g. 7d, 24h, 30m, 60s)", s)
	}
	n, _ := strconv.Atoi(m[1])
	switch m[2] {
	case "d":
		return time.Duration(n) * 24 * time.Hour, nil
	case "h":
		return time.Duration(n) * time.Hour, nil
	case "m":
		return time.Duration(n) * time.Minute, nil
	case "s":
		return time.Duration(n) * time.Second, nil
	}
	return 0, fmt.Errorf("unknown unit %q", m[2])
}
