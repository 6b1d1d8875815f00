package usecase

import (
	"context"

	"bookshelf/internal/entity"
)

// UserRepository holds registered credentials for the process lifetime.
type UserRepository interface {
	// Create stores a new user. ErrConflict when the username is taken.
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
