package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostel/infras/otel"
	"hostel/internal/domains/store"
	userModel "hostel/internal/domains/user/model"
	"hostel/shared/constant"
)

// Session holds the single signed-in user of this store and the food plan
// picked before a booking. Both are absent until written.
type Session interface {
	Current(ctx context.Context) (*userModel.User, error)
	Set(ctx context.Context, user userModel.User) error
	Clear(ctx context.Context) error
	SelectedFood(ctx context.Context) (string, error)
	SetSelectedFood(ctx context.Context, planID string) error
	ClearSelectedFood(ctx context.Context) error
}

type repositoryImpl struct {
	store store.Store
	otel  otel.Otel
}

func New(s store.Store, otel otel.Otel) Session {
	return &repositoryImpl{
		store: s,
		otel:  otel,
	}
}

func (r *repositoryImpl) scope(ctx context.Context, method string) (context.Context, otel.Scope) {
	return r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session."+method)
}

// Current returns nil when nobody is signed in.
func (r *repositoryImpl) Current(ctx context.Context) (*userModel.User, error) {
	ctx, scope := r.scope(ctx, "Current")
	defer scope.End()

	user, err := store.Get[*userModel.User](ctx, r.store, constant.KeyCurrentUser, nil)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return user, nil
}

func (r *repositoryImpl) Set(ctx context.Context, user userModel.User) error {
	ctx, scope := r.scope(ctx, "Set")
	defer scope.End()

	if err := store.Set(ctx, r.store, constant.KeyCurrentUser, user); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to set current user: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Clear(ctx context.Context) error {
	ctx, scope := r.scope(ctx, "Clear")
	defer scope.End()

	if err := store.Remove(ctx, r.store, constant.KeyCurrentUser); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to clear current user: %w", err)
	}

	return nil
}

// SelectedFood returns the empty string when no plan was picked.
func (r *repositoryImpl) SelectedFood(ctx context.Context) (string, error) {
	ctx, scope := r.scope(ctx, "SelectedFood")
	defer scope.End()

	planID, err := store.Get(ctx, r.store, constant.KeySelectedFood, constant.Empty)
	if err != nil {
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to get selected food plan: %w", err)
	}

	return planID, nil
}

func (r *repositoryImpl) SetSelectedFood(ctx context.Context, planID string) error {
	ctx, scope := r.scope(ctx, "SetSelectedFood")
	defer scope.End()

	if err := store.Set(ctx, r.store, constant.KeySelectedFood, planID); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to set selected food plan: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ClearSelectedFood(ctx context.Context) error {
	ctx, scope := r.scope(ctx, "ClearSelectedFood")
	defer scope.End()

	if err := store.Remove(ctx, r.store, constant.KeySelectedFood); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to clear selected food plan: %w", err)
	}

	return nil
}
