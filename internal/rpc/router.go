package rpc

import (
	"context"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
)

// TaskStore is the persistence surface the task procedures need. Implemented
// by repository.TaskRepository; tests substitute in-memory fakes.
type TaskStore interface {
	ListByUser(ctx context.Context, userID int64, f domain.TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, userID, id int64, p domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

type CategoryStore interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
}

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// Pinger reports database connectivity. Satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router is the procedure set: auth.*, tasks.*, categories.* and health.
// Every procedure takes a request Context carrying the (possibly absent)
// authenticated user and validates its input before touching a store.
type Router struct {
	tasks      TaskStore
	categories CategoryStore
	users      UserStore
	pinger     Pinger

	tokens     *auth.JWTVerifier
	bcryptCost int
	startTime  time.Time
}

func NewRouter(tasks TaskStore, categories CategoryStore, users UserStore, pinger Pinger, tokens *auth.JWTVerifier, bcryptCost int) *Router {
	return &Router{
		tasks:      tasks,
		categories: categories,
		users:      users,
		pinger:     pinger,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		startTime:  time.Now(),
	}
}
