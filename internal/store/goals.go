package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/agent-awareness/internal/model"
)

// ActiveGoals returns goals with status active, newest id first. The
// id ordering is the recency tie-break: goals have no updated_at.
func (s *SQLiteStore) ActiveGoals(ctx context.Context, limit int) ([]model.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, status FROM goals
		 WHERE status = 'active' ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Status); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// TasksByStatus returns tasks in the given status, highest priority
// first, each carrying its owning goal's name. A task whose goal row is
// missing is skipped and logged rather than failing the read; the skip
// count is visible via DanglingTasks and Stats.
func (s *SQLiteStore) TasksByStatus(ctx context.Context, status string, limit int) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT t.id, t.title, t.priority, t.status, t.goal_id, g.name
		 FROM tasks t LEFT JOIN goals g ON t.goal_id = g.id
		 WHERE t.status = ? ORDER BY t.priority DESC LIMIT ?`, status, limit)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var goalName sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Priority, &t.Status, &t.GoalID, &goalName); err != nil {
			return nil, err
		}
		if !goalName.Valid {
			s.danglingTasks.Add(1)
			s.log.Warn("task references missing goal",
				zap.Int64("task_id", t.ID),
				zap.Int64("goal_id", t.GoalID))
			continue
		}
		t.Goal = goalName.String
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateGoal creates a goal. An empty status defaults to active.
func (s *SQLiteStore) CreateGoal(ctx context.Context, name, description, status string) (*model.Goal, error) {
	if status == "" {
		status = "active"
	}
	if !model.ValidGoalStatuses[status] {
		return nil, fmt.Errorf("invalid goal status %q", status)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (name, description, status, created_at) VALUES (?, ?, ?, ?)`,
		name, description, status, now)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Goal{ID: id, Name: name, Description: description, Status: status}, nil
}

// CreateTask creates a task under an existing goal. The foreign key is
// checked up front so the caller gets a clear error instead of a
// constraint failure.
func (s *SQLiteStore) CreateTask(ctx context.Context, p CreateTaskParams) (*model.Task, error) {
	status := p.Status
	if status == "" {
		status = "pending"
	}
	if !model.ValidTaskStatuses[status] {
		return nil, fmt.Errorf("invalid task status %q", status)
	}

	var goalName string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM goals WHERE id = ?`, p.GoalID).Scan(&goalName)
	if err != nil {
		return nil, fmt.Errorf("goal %d not found", p.GoalID)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, priority, status, goal_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.Title, p.Priority, status, p.GoalID, now)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.Task{
		ID:       id,
		Title:    p.Title,
		Priority: p.Priority,
		Status:   status,
		GoalID:   p.GoalID,
		Goal:     goalName,
	}, nil
}
