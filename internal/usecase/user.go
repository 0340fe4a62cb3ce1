package usecase

import (
	"context"

	"bookaholic/internal/entity"
)

type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateName when the
	// username is already taken (exact, case-sensitive match).
	Create(ctx context.Context, u *entity.User) error

	GetByUsername(ctx context.Context, username string) (entity.User, error)
	GetByID(ctx context.Context, id string) (entity.User, error)
}
