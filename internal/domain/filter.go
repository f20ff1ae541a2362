package domain

import "time"

// TaskFilter narrows a task listing. Nil fields are ignored.
type TaskFilter struct {
	Completed  *bool
	CategoryID *int64
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	DueDate     *time.Time
	CategoryID  *int64
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Priority == nil && p.DueDate == nil && p.CategoryID == nil
}
