package repository

import (
	"context"
	"hostel/infras/otel"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/store"
	"hostel/shared/constant"
	gRepo "hostel/shared/repository"
)

type Room interface {
	All(ctx context.Context) ([]model.Room, error)
	Find(ctx context.Context, match func(model.Room) bool) (model.Room, bool, error)
	Mutate(ctx context.Context, fn func(rooms *[]model.Room) error) error
	Seed(ctx context.Context) (bool, error)
}

type repositoryImpl struct {
	gRepo.Collection[model.Room]
}

func New(s store.Store, otel otel.Otel) Room {
	return &repositoryImpl{
		Collection: gRepo.NewCollection(model.EntityName, constant.KeyRooms, model.Seed(), s, otel),
	}
}
