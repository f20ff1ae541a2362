// Package status aggregates a user's tasks into a completed/pending summary
// for the dashboard pages. It talks to the procedure layer only, never to
// the store directly.
package status

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/rpc"
)

type Summary struct {
	Total          int           `json:"total"`
	TotalCompleted int           `json:"totalCompleted"`
	TotalPending   int           `json:"totalPending"`
	TotalTasks     []domain.Task `json:"totalTasks"`
	Completed      []domain.Task `json:"completed"`
	Pending        []domain.Task `json:"pending"`
}

type Service struct {
	router *rpc.Router
}

func NewService(router *rpc.Router) *Service {
	return &Service{router: router}
}

// GetStatus fetches all tasks for the user and partitions them by
// completion state. The health call is a connectivity smoke-check; its
// result is logged, not consumed. Failures from the task fetch propagate
// unchanged, recomputed on every call, never cached.
func (s *Service) GetStatus(ctx context.Context, userID int64) (*Summary, error) {
	health := s.router.Health(ctx)
	logger.Debug("health check before status aggregation",
		"status", health.Status, "database", health.Database)

	tasks, err := s.router.TasksGetAll(ctx, rpc.WithUser(userID), domain.TaskFilter{})
	if err != nil {
		logger.Error("failed to fetch tasks for status", "user_id", userID, "error", err)
		return nil, err
	}

	sum := &Summary{
		TotalTasks: make([]domain.Task, 0, len(tasks)),
		Completed:  []domain.Task{},
		Pending:    []domain.Task{},
	}
	for _, t := range tasks {
		if t.Completed {
			t.Status = "completed"
			sum.Completed = append(sum.Completed, t)
		} else {
			t.Status = "pending"
			sum.Pending = append(sum.Pending, t)
		}
		sum.TotalTasks = append(sum.TotalTasks, t)
	}
	sum.Total = len(sum.TotalTasks)
	sum.TotalCompleted = len(sum.Completed)
	sum.TotalPending = len(sum.Pending)
	return sum, nil
}

// CreateTask creates a task on behalf of the given user. The user ID is a
// required parameter here; single-tenant fallbacks belong to the HTTP
// boundary, not this entry point.
func (s *Service) CreateTask(ctx context.Context, userID int64, in rpc.CreateTaskInput) (*domain.Task, error) {
	t, err := s.router.TasksCreate(ctx, rpc.WithUser(userID), in)
	if err != nil {
		logger.Error("failed to create task", "user_id", userID, "error", err)
		return nil, err
	}
	return t, nil
}
