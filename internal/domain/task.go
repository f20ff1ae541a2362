package domain

import "time"

// Priority of a task. Stored as text in the tasks table.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"userId"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description,omitempty"`
	Priority    Priority   `db:"priority" json:"priority"`
	Completed   bool       `db:"completed" json:"completed"`
	DueDate     *time.Time `db:"due_date" json:"dueDate,omitempty"`
	CategoryID  *int64     `db:"category_id" json:"categoryId,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`

	// Status mirrors Completed as a display string ("completed"/"pending").
	// Derived, set only by the status aggregator, never persisted.
	Status string `db:"-" json:"status,omitempty"`
}
