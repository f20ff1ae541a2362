package rpc

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the public shape of a user; never carries the hash.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResult struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, "@")
}

// AuthRegister creates a user with a bcrypt-hashed password and signs a
// token for it. CONFLICT when the email is already taken.
func (r *Router) AuthRegister(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	var fields []FieldError
	if !validEmail(in.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "invalid email address"})
	}
	if len(in.Password) < 6 {
		fields = append(fields, FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if len([]rune(in.Name)) < 2 {
		fields = append(fields, FieldError{Field: "name", Message: "must be at least 2 characters"})
	}
	if len(fields) > 0 {
		return nil, validationError(fields)
	}

	hash, err := auth.HashPassword(in.Password, r.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{Email: in.Email, PasswordHash: hash, Name: in.Name}
	if err := r.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, NewError(KindConflict, "user already exists")
		}
		return nil, err
	}

	token, err := r.tokens.Generate(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  UserSummary{ID: u.ID, Email: u.Email, Name: u.Name},
		Token: token,
	}, nil
}

// AuthLogin verifies credentials and issues a token. Unknown email and wrong
// password both answer "invalid credentials" so callers cannot probe which
// check failed.
func (r *Router) AuthLogin(ctx context.Context, in LoginInput) (*AuthResult, error) {
	var fields []FieldError
	if !validEmail(in.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "invalid email address"})
	}
	if in.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "required"})
	}
	if len(fields) > 0 {
		return nil, validationError(fields)
	}

	u, err := r.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewError(KindNotFound, "invalid credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return nil, NewError(KindUnauthorized, "invalid credentials")
	}

	token, err := r.tokens.Generate(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  UserSummary{ID: u.ID, Email: u.Email, Name: u.Name},
		Token: token,
	}, nil
}
