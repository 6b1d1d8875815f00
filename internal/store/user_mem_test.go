package store

import (
	"context"
	"testing"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMem_CreateAndGet(t *testing.T) {
	s := NewUserMem()
	ctx := context.Background()

	err := s.Create(ctx, &entity.User{Username: "testuser", Password: "hashed"})
	require.NoError(t, err)

	user, err := s.GetByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "hashed", user.Password)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserMem_CreateDuplicate(t *testing.T) {
	s := NewUserMem()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &entity.User{Username: "testuser", Password: "hashed"}))

	err := s.Create(ctx, &entity.User{Username: "testuser", Password: "other"})
	assert.ErrorIs(t, err, usecase.ErrConflict)
}

func TestUserMem_GetUnknown(t *testing.T) {
	s := NewUserMem()

	_, err := s.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
