package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"acne-bot/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesUser(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
	require.Equal(t, int64(10), user.ChatID)
}

func TestMemoryUserRepository_SaveIsolatesCaller(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	user.StartSession([]byte("photo"))
	user.AddLesion(entity.Lesion{ID: "a", Type: entity.Papule})
	require.NoError(t, repo.Save(ctx, user))

	// изменения после Save не попадают в хранилище
	user.AddLesion(entity.Lesion{ID: "b", Type: entity.Nodule})

	stored, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMarking, stored.State)
	require.Len(t, stored.Lesions, 1)
	require.Equal(t, "a", stored.Lesions[0].ID)
}

func TestMemoryUserRepository_Reset(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, _ := repo.Get(ctx, 1, 10)
	user.StartSession([]byte("photo"))
	user.AddLesion(entity.Lesion{ID: "a"})
	require.NoError(t, repo.Save(ctx, user))

	require.NoError(t, repo.Reset(ctx, 1))
	require.NoError(t, repo.Reset(ctx, 99))

	stored, _ := repo.Get(ctx, 1, 10)
	require.Equal(t, entity.StateMainMenu, stored.State)
	require.Nil(t, stored.Photo)
	require.Empty(t, stored.Lesions)
}
