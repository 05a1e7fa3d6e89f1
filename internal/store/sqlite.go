package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/rcliao/agent-awareness/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db            *sql.DB
	log           *zap.Logger
	danglingTasks atomic.Int64
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
// A nil logger disables logging.
func NewSQLiteStore(dbPath string, log *zap.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db, log: log}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Debug("store opened", zap.String("path", dbPath))
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS semantic_memory (
		concept    TEXT PRIMARY KEY,
		definition TEXT NOT NULL,
		confidence REAL NOT NULL DEFAULT 0.5
	);

	CREATE TABLE IF NOT EXISTS episodic_memory (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type   TEXT NOT NULL,
		content      TEXT NOT NULL,
		significance REAL NOT NULL DEFAULT 0.5,
		created_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_episodic_type ON episodic_memory(event_type);
	CREATE INDEX IF NOT EXISTS idx_episodic_created ON episodic_memory(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_episodic_significance ON episodic_memory(significance DESC);

	CREATE TABLE IF NOT EXISTS goals (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active',
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status);

	CREATE TABLE IF NOT EXISTS tasks (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		priority   INTEGER NOT NULL DEFAULT 0,
		status     TEXT NOT NULL DEFAULT 'pending',
		goal_id    INTEGER NOT NULL REFERENCES goals(id),
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status, priority DESC);
	CREATE INDEX IF NOT EXISTS idx_tasks_goal ON tasks(goal_id);

	CREATE TABLE IF NOT EXISTS working_memory (
		context_key TEXT PRIMARY KEY,
		content     TEXT NOT NULL,
		priority    INTEGER NOT NULL DEFAULT 0,
		expires_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_working_expires ON working_memory(expires_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) UpsertFact(ctx context.Context, f model.Fact) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO semantic_memory (concept, definition, confidence) VALUES (?, ?, ?)`,
		f.Concept, f.Definition, f.Confidence)
	if err != nil {
		return fmt.Errorf("upsert fact %q: %w", f.Concept, err)
	}
	return nil
}

func (s *SQLiteStore) Facts(ctx context.Context, concepts ...string) (map[string]model.Fact, error) {
	facts := make(map[string]model.Fact, len(concepts))
	if len(concepts) == 0 {
		return facts, nil
	}

	placeholders := strings.Repeat("?,", len(concepts))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(concepts))
	for i, c := range concepts {
		args[i] = c
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT concept, definition, confidence FROM semantic_memory WHERE concept IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("query facts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f model.Fact
		if err := rows.Scan(&f.Concept, &f.Definition, &f.Confidence); err != nil {
			return nil, err
		}
		facts[f.Concept] = f
	}
	return facts, rows.Err()
}

// DanglingTasks reports how many task rows have been skipped because
// their goal reference could not be resolved.
func (s *SQLiteStore) DanglingTasks() int64 {
	return s.danglingTasks.Load()
}

func (s *SQLiteStore) Close() error {
	s.log.Debug("store closed")
	return s.db.Close()
}
