package repository

import (
	"context"

	"github.com/jhoicas/expense-review-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername devuelve nil, nil si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
