package usecase

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateName      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotOwner           = errors.New("entry belongs to another user")
	ErrInvalidStatus      = errors.New("invalid reading status")
	ErrCatalogUnavailable = errors.New("catalog service unavailable")
)
