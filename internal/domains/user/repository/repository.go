package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostel/infras/otel"
	"hostel/internal/domains/store"
	"hostel/internal/domains/user/model"
	"hostel/shared/constant"
	gRepo "hostel/shared/repository"
)

type User interface {
	All(ctx context.Context) ([]model.User, error)
	Find(ctx context.Context, match func(model.User) bool) (model.User, bool, error)
	Mutate(ctx context.Context, fn func(users *[]model.User) error) error
}

type repositoryImpl struct {
	gRepo.Collection[model.User]
}

func New(s store.Store, otel otel.Otel) User {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.User](model.EntityName, constant.KeyUsers, nil, s, otel),
	}
}
