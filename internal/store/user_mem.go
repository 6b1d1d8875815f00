package store

import (
	"context"
	"sync"
	"time"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

// UserMem is the process-lifetime credential registry. Registrations do
// not survive a restart and are never updated or deleted.
type UserMem struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

func NewUserMem() *UserMem {
	return &UserMem{users: make(map[string]entity.User)}
}

func (s *UserMem) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return usecase.ErrConflict
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.Username] = *user
	return nil
}

func (s *UserMem) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, usecase.ErrNotFound
	}
	return &user, nil
}
