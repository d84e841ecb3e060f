package repository_test

import (
	"context"
	"errors"
	"hostel/infras/otel/mocks"
	"hostel/internal/domains/store"
	storeMocks "hostel/internal/domains/store/mocks"
	"hostel/internal/domains/store/storetest"
	"hostel/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type plan struct {
	ID    string `json:"id"`
	Price int    `json:"price"`
}

var defaults = []plan{{ID: "f1", Price: 100}, {ID: "f2", Price: 200}}

func newCollection(t *testing.T) repository.Collection[plan] {
	t.Helper()

	return repository.NewCollection("plan", "hostel_food_plans", defaults, storetest.New(t), mocks.NewOtel())
}

func TestCollectionAllReturnsDefault(t *testing.T) {
	repo := newCollection(t)

	items, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults, items)
}

func TestCollectionNilDefault(t *testing.T) {
	repo := repository.NewCollection[plan]("plan", "hostel_bookings", nil, storetest.New(t), mocks.NewOtel())

	items, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollectionReplaceAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newCollection(t)

	require.NoError(t, repo.Replace(ctx, []plan{{ID: "f9", Price: 900}}))

	item, found, err := repo.Find(ctx, func(p plan) bool { return p.ID == "f9" })
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 900, item.Price)

	_, found, err = repo.Find(ctx, func(p plan) bool { return p.ID == "f1" })
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCollectionMutateStartsFromDefault(t *testing.T) {
	ctx := context.Background()
	repo := newCollection(t)

	err := repo.Mutate(ctx, func(items *[]plan) error {
		*items = append(*items, plan{ID: "f3", Price: 350})

		return nil
	})
	require.NoError(t, err)

	items, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, []plan{{ID: "f1", Price: 100}, {ID: "f2", Price: 200}}, defaults)
}

func TestCollectionSeed(t *testing.T) {
	ctx := context.Background()
	repo := newCollection(t)

	seeded, err := repo.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	require.NoError(t, repo.Replace(ctx, []plan{}))

	seeded, err = repo.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	items, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollectionStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := storeMocks.NewMockStore(ctrl)
	boom := errors.New("store offline")

	s.EXPECT().Load(gomock.Any(), "hostel_food_plans").Return(nil, boom)
	s.EXPECT().Update(gomock.Any(), "hostel_food_plans", gomock.Any()).Return(boom)

	repo := repository.NewCollection("plan", "hostel_food_plans", defaults, s, mocks.NewOtel())

	_, err := repo.All(context.Background())
	assert.ErrorIs(t, err, boom)

	err = repo.Mutate(context.Background(), func(_ *[]plan) error { return nil })
	assert.ErrorIs(t, err, boom)
}

func TestCollectionMutateNoChange(t *testing.T) {
	ctx := context.Background()
	repo := newCollection(t)

	err := repo.Mutate(ctx, func(_ *[]plan) error { return store.ErrNoChange })
	require.NoError(t, err)
}
