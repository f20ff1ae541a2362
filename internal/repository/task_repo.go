package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = "id, user_id, title, description, priority, completed, due_date, category_id, created_at, updated_at"

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority,
		&t.Completed, &t.DueDate, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUser returns the user's tasks, newest-created first. Every query is
// scoped by user_id so one user can never see another's rows.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64, f domain.TaskFilter) ([]domain.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1"
	args := []any{userID}

	if f.Completed != nil {
		args = append(args, *f.Completed)
		query += fmt.Sprintf(" AND completed = $%d", len(args))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, description, priority, completed, due_date, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		t.UserID, t.Title, t.Description, t.Priority, t.Completed, t.DueDate, t.CategoryID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update applies a partial update as a single conditional statement scoped
// by (id, user_id) and refreshes updated_at. Returns ErrNotFound when no
// row matches. Last write wins; there is no version column.
func (r *TaskRepository) Update(ctx context.Context, userID, id int64, p domain.TaskPatch) (*domain.Task, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id, userID}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Completed != nil {
		add("completed", *p.Completed)
	}
	if p.Priority != nil {
		add("priority", *p.Priority)
	}
	if p.DueDate != nil {
		add("due_date", *p.DueDate)
	}
	if p.CategoryID != nil {
		add("category_id", *p.CategoryID)
	}

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") +
		" WHERE id = $1 AND user_id = $2 RETURNING " + taskColumns

	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

// Delete removes the task owned by userID. ErrNotFound when nothing matched.
func (r *TaskRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
