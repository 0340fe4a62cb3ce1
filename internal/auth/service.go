package auth

import (
	"context"
	"errors"

	"bookaholic/internal/entity"
	"bookaholic/internal/usecase"
)

type Service struct {
	users usecase.UserRepository
}

func NewService(users usecase.UserRepository) *Service {
	return &Service{users: users}
}

// Register creates a new user with a bcrypt hash of the password.
// The plaintext is never stored. Usernames are case-sensitive and unique.
func (s *Service) Register(ctx context.Context, username, password string) (entity.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Authenticate looks up the user by exact username and checks the
// password. It fails with the same error whether the name is unknown or
// the password is wrong, so callers cannot tell the two cases apart.
func (s *Service) Authenticate(ctx context.Context, username, password string) (entity.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return entity.User{}, usecase.ErrInvalidCredentials
		}
		return entity.User{}, err
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return entity.User{}, usecase.ErrInvalidCredentials
	}
	return user, nil
}
