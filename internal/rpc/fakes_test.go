package rpc

import (
	"context"
	"sync"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// In-memory store fakes mirroring the repository semantics, including the
// (id, user_id) scoping of update and delete.

type fakeTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  []domain.Task
}

func (s *fakeTaskStore) ListByUser(_ context.Context, userID int64, f domain.TaskFilter) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []domain.Task
	for i := len(s.tasks) - 1; i >= 0; i-- { // newest-created first
		t := s.tasks[i]
		if t.UserID != userID {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}

func (s *fakeTaskStore) Create(_ context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.tasks = append(s.tasks, *t)
	return nil
}

func (s *fakeTaskStore) Update(_ context.Context, userID, id int64, p domain.TaskPatch) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		t := &s.tasks[i]
		if t.ID != id || t.UserID != userID {
			continue
		}
		if p.Title != nil {
			t.Title = *p.Title
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.Completed != nil {
			t.Completed = *p.Completed
		}
		if p.Priority != nil {
			t.Priority = *p.Priority
		}
		if p.DueDate != nil {
			t.DueDate = p.DueDate
		}
		if p.CategoryID != nil {
			t.CategoryID = p.CategoryID
		}
		t.UpdatedAt = time.Now()
		cp := *t
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *fakeTaskStore) Delete(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id && s.tasks[i].UserID == userID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCategoryStore struct {
	mu     sync.Mutex
	nextID int64
	cats   []domain.Category
}

func (s *fakeCategoryStore) ListByUser(_ context.Context, userID int64) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []domain.Category
	for _, c := range s.cats {
		if c.UserID == userID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (s *fakeCategoryStore) Create(_ context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c.ID = s.nextID
	s.cats = append(s.cats, *c)
	return nil
}

type fakeUserStore struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*domain.User)}
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	s.nextID++
	u.ID = s.nextID
	cp := *u
	s.byEmail[u.Email] = &cp
	return nil
}

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter() *Router {
	return NewRouter(
		&fakeTaskStore{},
		&fakeCategoryStore{},
		newFakeUserStore(),
		&fakePinger{},
		auth.NewJWTVerifier([]byte("router-test-secret"), time.Hour),
		4, // min bcrypt cost keeps tests fast
	)
}
