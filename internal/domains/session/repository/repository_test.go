package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel/infras/otel/mocks"
	"hostel/internal/domains/session/repository"
	"hostel/internal/domains/store/storetest"
	userModel "hostel/internal/domains/user/model"
)

func TestSession_CurrentUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(storetest.New(t), mocks.NewOtel())

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	user := userModel.User{Name: "Asha", Email: "asha@example.com", Password: "secret1", CreatedAt: "2024-01-01T00:00:00.000Z"}
	require.NoError(t, repo.Set(ctx, user))

	current, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user, *current)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	current, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSession_SelectedFood(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(storetest.New(t), mocks.NewOtel())

	planID, err := repo.SelectedFood(ctx)
	require.NoError(t, err)
	assert.Empty(t, planID)

	require.NoError(t, repo.SetSelectedFood(ctx, "f2"))

	planID, err = repo.SelectedFood(ctx)
	require.NoError(t, err)
	assert.Equal(t, "f2", planID)

	require.NoError(t, repo.ClearSelectedFood(ctx))

	planID, err = repo.SelectedFood(ctx)
	require.NoError(t, err)
	assert.Empty(t, planID)
}
