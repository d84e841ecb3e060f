package repository

import (
	"context"
	"hostel/infras/otel"
	"hostel/internal/domains/food/model"
	"hostel/internal/domains/store"
	"hostel/shared/constant"
	gRepo "hostel/shared/repository"
)

type FoodPlan interface {
	All(ctx context.Context) ([]model.FoodPlan, error)
	Find(ctx context.Context, match func(model.FoodPlan) bool) (model.FoodPlan, bool, error)
	Mutate(ctx context.Context, fn func(plans *[]model.FoodPlan) error) error
	Seed(ctx context.Context) (bool, error)
}

type repositoryImpl struct {
	gRepo.Collection[model.FoodPlan]
}

func New(s store.Store, otel otel.Otel) FoodPlan {
	return &repositoryImpl{
		Collection: gRepo.NewCollection(model.EntityName, constant.KeyFoodPlans, model.Seed(), s, otel),
	}
}
