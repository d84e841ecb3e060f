package repository

import (
	"context"
	"hostel/infras/otel"
	"hostel/internal/domains/booking/model"
	"hostel/internal/domains/store"
	"hostel/shared/constant"
	gRepo "hostel/shared/repository"
)

type Booking interface {
	All(ctx context.Context) ([]model.Booking, error)
	Find(ctx context.Context, match func(model.Booking) bool) (model.Booking, bool, error)
	Mutate(ctx context.Context, fn func(bookings *[]model.Booking) error) error
}

type repositoryImpl struct {
	gRepo.Collection[model.Booking]
}

func New(s store.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Booking](model.EntityName, constant.KeyBookings, nil, s, otel),
	}
}
