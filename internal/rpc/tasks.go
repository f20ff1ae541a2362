package rpc

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

const (
	maxTitleLen       = 50
	maxDescriptionLen = 500
)

type CreateTaskInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    domain.Priority `json:"priority"`
	DueDate     *time.Time      `json:"dueDate"`
	CategoryID  *int64          `json:"categoryId"`
}

type UpdateTaskInput struct {
	ID          int64            `json:"id"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Completed   *bool            `json:"completed"`
	Priority    *domain.Priority `json:"priority"`
	DueDate     *time.Time       `json:"dueDate"`
	CategoryID  *int64           `json:"categoryId"`
}

// TasksGetAll lists the caller's tasks, newest-created first, optionally
// filtered by completion state and category.
func (r *Router) TasksGetAll(ctx context.Context, rc Context, f domain.TaskFilter) ([]domain.Task, error) {
	userID, ok := rc.User()
	if !ok {
		return nil, ErrUnauthorized
	}
	return r.tasks.ListByUser(ctx, userID, f)
}

func (r *Router) TasksCreate(ctx context.Context, rc Context, in CreateTaskInput) (*domain.Task, error) {
	userID, ok := rc.User()
	if !ok {
		return nil, ErrUnauthorized
	}

	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}

	var fields []FieldError
	if n := len([]rune(in.Title)); n < 1 || n > maxTitleLen {
		fields = append(fields, FieldError{Field: "title", Message: "must be 1-50 characters"})
	}
	if len([]rune(in.Description)) > maxDescriptionLen {
		fields = append(fields, FieldError{Field: "description", Message: "must be at most 500 characters"})
	}
	if !in.Priority.Valid() {
		fields = append(fields, FieldError{Field: "priority", Message: "must be low, medium or high"})
	}
	if in.DueDate != nil && !in.DueDate.After(time.Now()) {
		fields = append(fields, FieldError{Field: "dueDate", Message: "must be in the future"})
	}
	if len(fields) > 0 {
		return nil, validationError(fields)
	}

	t := &domain.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CategoryID:  in.CategoryID,
	}
	if err := r.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// TasksUpdate applies a partial update to a task the caller owns. NOT_FOUND
// covers both a missing id and an id owned by someone else.
func (r *Router) TasksUpdate(ctx context.Context, rc Context, in UpdateTaskInput) (*domain.Task, error) {
	userID, ok := rc.User()
	if !ok {
		return nil, ErrUnauthorized
	}

	var fields []FieldError
	if in.Title != nil {
		if n := len([]rune(*in.Title)); n < 1 || n > maxTitleLen {
			fields = append(fields, FieldError{Field: "title", Message: "must be 1-50 characters"})
		}
	}
	if in.Description != nil && len([]rune(*in.Description)) > maxDescriptionLen {
		fields = append(fields, FieldError{Field: "description", Message: "must be at most 500 characters"})
	}
	if in.Priority != nil && !in.Priority.Valid() {
		fields = append(fields, FieldError{Field: "priority", Message: "must be low, medium or high"})
	}
	if len(fields) > 0 {
		return nil, validationError(fields)
	}

	patch := domain.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CategoryID:  in.CategoryID,
	}

	t, err := r.tasks.Update(ctx, userID, in.ID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewError(KindNotFound, "task not found")
		}
		return nil, err
	}
	return t, nil
}

type DeleteResult struct {
	Success bool `json:"success"`
}

func (r *Router) TasksDelete(ctx context.Context, rc Context, id int64) (*DeleteResult, error) {
	userID, ok := rc.User()
	if !ok {
		return nil, ErrUnauthorized
	}

	if err := r.tasks.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewError(KindNotFound, "task not found")
		}
		return nil, err
	}
	return &DeleteResult{Success: true}, nil
}
