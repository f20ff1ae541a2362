package domain

// DefaultCategoryColor is applied when a category is created without one.
const DefaultCategoryColor = "#3B82F6"

type Category struct {
	ID     int64  `db:"id" json:"id"`
	UserID int64  `db:"user_id" json:"userId"`
	Name   string `db:"name" json:"name"`
	Color  string `db:"color" json:"color"`
}
