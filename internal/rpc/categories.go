package rpc

import (
	"context"

	"taskboard/internal/domain"
)

type CreateCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (r *Router) CategoriesGetAll(ctx context.Context, rc Context) ([]domain.Category, error) {
	userID, ok := rc.User()
	if !ok {
		return nil, ErrUnauthorized
	}
	return r.categories.ListByUser(ctx, userID)
}

func (r *Router) CategoriesCreate(ctx context.Context, rc Context, in CreateCategoryInput) (*domain.Category, error) {
	userID, ok := rc.User()
	if !ok {
		return nil, ErrUnauthorized
	}

	if len([]rune(in.Name)) < 1 {
		return nil, validationError([]FieldError{{Field: "name", Message: "required"}})
	}
	if in.Color == "" {
		in.Color = domain.DefaultCategoryColor
	}

	c := &domain.Category{UserID: userID, Name: in.Name, Color: in.Color}
	if err := r.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
