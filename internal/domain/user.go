package domain

type User struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"`
	Name         string `db:"name" json:"name"`
}
