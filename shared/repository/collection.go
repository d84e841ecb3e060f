package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"hostel/internal/domains/store"
	"hostel/shared/constant"
)

// Collection is an ordered sequence of T persisted under a single key.
// Every write replaces the whole sequence.
type Collection[T any] struct {
	store   store.Store
	otel    otel.Otel
	key     string
	entitas string
	def     []T
}

func NewCollection[T any](entitasName, key string, def []T, s store.Store, otl otel.Otel) Collection[T] {
	if def == nil {
		def = []T{}
	}

	return Collection[T]{
		store:   s,
		otel:    otl,
		key:     key,
		entitas: entitasName,
		def:     def,
	}
}

func (repo *Collection[T]) scope(ctx context.Context, method string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method))
	scope.SetAttribute(constant.OtelKeyAttribute, repo.key)

	return ctx, scope
}

// All returns the stored sequence, or the default when nothing was written yet.
func (repo *Collection[T]) All(ctx context.Context) ([]T, error) {
	ctx, scope := repo.scope(ctx, "All")
	defer scope.End()

	items, err := store.Get(ctx, repo.store, repo.key, repo.def)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Find returns the first item matching match.
func (repo *Collection[T]) Find(ctx context.Context, match func(T) bool) (res T, found bool, err error) {
	items, err := repo.All(ctx)
	if err != nil {
		return res, false, err
	}

	for _, item := range items {
		if match(item) {
			return item, true, nil
		}
	}

	return res, false, nil
}

// Replace overwrites the sequence.
func (repo *Collection[T]) Replace(ctx context.Context, items []T) error {
	ctx, scope := repo.scope(ctx, "Replace")
	defer scope.End()

	if items == nil {
		items = []T{}
	}

	if err := store.Set(ctx, repo.store, repo.key, items); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save data (%s): %w", repo.entitas, err)
	}

	return nil
}

// Mutate reads, modifies and writes back the sequence atomically. fn may return
// store.ErrNoChange to skip the write.
func (repo *Collection[T]) Mutate(ctx context.Context, fn func(items *[]T) error) error {
	ctx, scope := repo.scope(ctx, "Mutate")
	defer scope.End()

	err := store.Mutate(ctx, repo.store, repo.key, repo.def, func(items *[]T) error {
		if *items == nil {
			*items = []T{}
		}

		return fn(items)
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return nil
}

// Seed writes the default sequence when the key is absent and reports whether it did.
func (repo *Collection[T]) Seed(ctx context.Context) (bool, error) {
	ctx, scope := repo.scope(ctx, "Seed")
	defer scope.End()

	seeded := false

	err := repo.store.Update(ctx, repo.key, func(_ []byte, found bool) ([]byte, error) {
		seeded = false
		if found {
			return nil, store.ErrNoChange
		}

		seeded = true

		return json.Marshal(repo.def)
	})
	if err != nil && !errors.Is(err, store.ErrNoChange) {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to seed data (%s): %w", repo.entitas, err)
	}

	return seeded, nil
}
