package rpc

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, r *Router, email string) (int64, Context) {
	t.Helper()
	res, err := r.AuthRegister(context.Background(), RegisterInput{
		Email:    email,
		Password: "secret1",
		Name:     "Tester",
	})
	require.NoError(t, err)
	return res.User.ID, WithUser(res.User.ID)
}

func TestAuthRegister_Validation(t *testing.T) {
	r := newTestRouter()

	_, err := r.AuthRegister(context.Background(), RegisterInput{
		Email:    "not-an-email",
		Password: "123",
		Name:     "x",
	})
	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, KindBadRequest, rpcErr.Kind)
	assert.Len(t, rpcErr.Fields, 3)
}

func TestAuthRegister_Conflict(t *testing.T) {
	r := newTestRouter()
	registerUser(t, r, "a@x.com")

	_, err := r.AuthRegister(context.Background(), RegisterInput{
		Email:    "a@x.com",
		Password: "secret1",
		Name:     "Tester",
	})
	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, KindConflict, rpcErr.Kind)
}

// Unknown email and wrong password must be indistinguishable by message.
func TestAuthLogin_GenericMessage(t *testing.T) {
	r := newTestRouter()
	registerUser(t, r, "a@x.com")

	_, errUnknown := r.AuthLogin(context.Background(), LoginInput{Email: "b@x.com", Password: "secret1"})
	_, errWrongPw := r.AuthLogin(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong-pw"})

	var e1, e2 *Error
	require.ErrorAs(t, errUnknown, &e1)
	require.ErrorAs(t, errWrongPw, &e2)
	assert.Equal(t, "invalid credentials", e1.Message)
	assert.Equal(t, "invalid credentials", e2.Message)
	assert.Equal(t, KindNotFound, e1.Kind)
	assert.Equal(t, KindUnauthorized, e2.Kind)
}

func TestRegisterLoginCreateList_Scenario(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()

	reg, err := r.AuthRegister(ctx, RegisterInput{Email: "a@x.com", Password: "secret1", Name: "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)

	login, err := r.AuthLogin(ctx, LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, reg.User.ID, login.User.ID)

	rc := WithUser(login.User.ID)
	created, err := r.TasksCreate(ctx, rc, CreateTaskInput{Title: "Buy milk", Priority: domain.PriorityLow})
	require.NoError(t, err)
	assert.False(t, created.Completed)

	tasks, err := r.TasksGetAll(ctx, rc, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, domain.PriorityLow, tasks[0].Priority)
	assert.False(t, tasks[0].Completed)
}

func TestTasksCreate_Defaults(t *testing.T) {
	r := newTestRouter()
	_, rc := registerUser(t, r, "a@x.com")

	created, err := r.TasksCreate(context.Background(), rc, CreateTaskInput{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.False(t, created.Completed)
	assert.NotZero(t, created.ID)
}

func TestTasksCreate_Validation(t *testing.T) {
	r := newTestRouter()
	_, rc := registerUser(t, r, "a@x.com")
	ctx := context.Background()

	cases := []struct {
		name  string
		in    CreateTaskInput
		field string
	}{
		{"empty title", CreateTaskInput{Title: ""}, "title"},
		{"long title", CreateTaskInput{Title: strings.Repeat("x", 51)}, "title"},
		{"long description", CreateTaskInput{Title: "t", Description: strings.Repeat("x", 501)}, "description"},
		{"bad priority", CreateTaskInput{Title: "t", Priority: "urgent"}, "priority"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.TasksCreate(ctx, rc, tc.in)
			var rpcErr *Error
			require.ErrorAs(t, err, &rpcErr)
			assert.Equal(t, KindBadRequest, rpcErr.Kind)
			require.Len(t, rpcErr.Fields, 1)
			assert.Equal(t, tc.field, rpcErr.Fields[0].Field)
		})
	}
}

func TestTasksCreate_DueDate(t *testing.T) {
	r := newTestRouter()
	_, rc := registerUser(t, r, "a@x.com")
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	_, err := r.TasksCreate(ctx, rc, CreateTaskInput{Title: "t", DueDate: &past})
	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, KindBadRequest, rpcErr.Kind)

	future := time.Now().Add(time.Hour)
	created, err := r.TasksCreate(ctx, rc, CreateTaskInput{Title: "t", DueDate: &future})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)
	assert.True(t, created.DueDate.Equal(future))
}

// Interleaved creates across two users: listings never cross owners.
func TestTasksGetAll_OwnerScoping(t *testing.T) {
	r := newTestRouter()
	aliceID, alice := registerUser(t, r, "a@x.com")
	bobID, bob := registerUser(t, r, "b@x.com")
	ctx := context.Background()

	for i, rc := range []Context{alice, bob, alice, bob, alice} {
		title := "task-" + string(rune('0'+i))
		_, err := r.TasksCreate(ctx, rc, CreateTaskInput{Title: title})
		require.NoError(t, err)
	}

	aliceTasks, err := r.TasksGetAll(ctx, alice, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, aliceTasks, 3)
	for _, task := range aliceTasks {
		assert.Equal(t, aliceID, task.UserID)
	}

	bobTasks, err := r.TasksGetAll(ctx, bob, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, bobTasks, 2)
	for _, task := range bobTasks {
		assert.Equal(t, bobID, task.UserID)
	}
}

func TestTasksGetAll_NewestFirst(t *testing.T) {
	r := newTestRouter()
	_, rc := registerUser(t, r, "a@x.com")
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := r.TasksCreate(ctx, rc, CreateTaskInput{Title: title})
		require.NoError(t, err)
	}

	tasks, err := r.TasksGetAll(ctx, rc, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestTasksGetAll_Filters(t *testing.T) {
	r := newTestRouter()
	_, rc := registerUser(t, r, "a@x.com")
	ctx := context.Background()

	done, err := r.TasksCreate(ctx, rc, CreateTaskInput{Title: "done"})
	require.NoError(t, err)
	completed := true
	_, err = r.TasksUpdate(ctx, rc, UpdateTaskInput{ID: done.ID, Completed: &completed})
	require.NoError(t, err)

	_, err = r.TasksCreate(ctx, rc, CreateTaskInput{Title: "open"})
	require.NoError(t, err)

	got, err := r.TasksGetAll(ctx, rc, domain.TaskFilter{Completed: &completed})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "done", got[0].Title)
}

func TestTasksUpdate_NotFoundAndCrossOwner(t *testing.T) {
	r := newTestRouter()
	_, alice := registerUser(t, r, "a@x.com")
	_, bob := registerUser(t, r, "b@x.com")
	ctx := context.Background()

	task, err := r.TasksCreate(ctx, alice, CreateTaskInput{Title: "mine"})
	require.NoError(t, err)

	title := "stolen"
	for name, in := range map[string]UpdateTaskInput{
		"missing id":  {ID: 9999, Title: &title},
		"cross owner": {ID: task.ID, Title: &title},
	} {
		_, err := r.TasksUpdate(ctx, bob, in)
		var rpcErr *Error
		require.ErrorAs(t, err, &rpcErr, name)
		assert.Equal(t, KindNotFound, rpcErr.Kind, name)
	}

	// no mutation happened
	got, err := r.TasksGetAll(ctx, alice, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Title)
}

func TestTasksUpdate_RefreshesUpdatedAt(t *testing.T) {
	r := newTestRouter()
	_, rc := registerUser(t, r, "a@x.com")
	ctx := context.Background()

	task, err := r.TasksCreate(ctx, rc, CreateTaskInput{Title: "t"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	title := "renamed"
	updated, err := r.TasksUpdate(ctx, rc, UpdateTaskInput{ID: task.ID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
}

func TestTasksDelete(t *testing.T) {
	r := newTestRouter()
	_, alice := registerUser(t, r, "a@x.com")
	_, bob := registerUser(t, r, "b@x.com")
	ctx := context.Background()

	task, err := r.TasksCreate(ctx, alice, CreateTaskInput{Title: "t"})
	require.NoError(t, err)

	_, err = r.TasksDelete(ctx, bob, task.ID)
	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, KindNotFound, rpcErr.Kind)

	res, err := r.TasksDelete(ctx, alice, task.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = r.TasksDelete(ctx, alice, task.ID)
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, KindNotFound, rpcErr.Kind)
}

func TestOwnerScopedProcedures_RejectAnonymous(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()
	anon := Anonymous()

	_, err := r.TasksGetAll(ctx, anon, domain.TaskFilter{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = r.TasksCreate(ctx, anon, CreateTaskInput{Title: "t"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = r.TasksUpdate(ctx, anon, UpdateTaskInput{ID: 1})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = r.TasksDelete(ctx, anon, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = r.CategoriesGetAll(ctx, anon)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = r.CategoriesCreate(ctx, anon, CreateCategoryInput{Name: "n"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCategories(t *testing.T) {
	r := newTestRouter()
	aliceID, alice := registerUser(t, r, "a@x.com")
	_, bob := registerUser(t, r, "b@x.com")
	ctx := context.Background()

	created, err := r.CategoriesCreate(ctx, alice, CreateCategoryInput{Name: "Work"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryColor, created.Color)
	assert.Equal(t, aliceID, created.UserID)

	_, err = r.CategoriesCreate(ctx, alice, CreateCategoryInput{Name: "Home", Color: "#FF0000"})
	require.NoError(t, err)

	_, err = r.CategoriesCreate(ctx, alice, CreateCategoryInput{Name: ""})
	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, KindBadRequest, rpcErr.Kind)

	mine, err := r.CategoriesGetAll(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := r.CategoriesGetAll(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestHealth(t *testing.T) {
	r := newTestRouter()

	h := r.Health(context.Background())
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "connected", h.Database)
	assert.NotEmpty(t, h.Timestamp)
	assert.GreaterOrEqual(t, h.Uptime, 0.0)
}

func TestHealth_DatabaseDown(t *testing.T) {
	r := NewRouter(&fakeTaskStore{}, &fakeCategoryStore{}, newFakeUserStore(),
		&fakePinger{err: errors.New("connection refused")}, nil, 4)

	h := r.Health(context.Background())
	assert.Equal(t, "degraded", h.Status)
	assert.Equal(t, "unreachable", h.Database)
}
