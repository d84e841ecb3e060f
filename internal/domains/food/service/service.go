package service

import (
	"context"
	"fmt"
	"slices"

	"hostel/infras/otel"
	"hostel/internal/domains/food/model"
	"hostel/internal/domains/food/model/dto"
	"hostel/internal/domains/food/repository"
	sessionRepo "hostel/internal/domains/session/repository"
	"hostel/internal/domains/store"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgLoginToSelectFood = "Please login to select a food plan"

type FoodPlan interface {
	List(ctx context.Context, popular *bool) ([]model.FoodPlan, error)
	Get(ctx context.Context, id string) (model.FoodPlan, error)
	Save(ctx context.Context, req dto.SaveFoodPlanRequest, editID string) (dto.SaveFoodPlanResponse, error)
	Delete(ctx context.Context, id string) (dto.DeleteFoodPlanResponse, error)
	Select(ctx context.Context, id string) (model.FoodPlan, error)
	Seed(ctx context.Context) error
}

type serviceImpl struct {
	repo    repository.FoodPlan
	session sessionRepo.Session
	otel    otel.Otel
}

func New(repo repository.FoodPlan, session sessionRepo.Session, otel otel.Otel) FoodPlan {
	return &serviceImpl{
		repo:    repo,
		session: session,
		otel:    otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, popular *bool) (res []model.FoodPlan, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	plans, err := s.repo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food plans")

		return nil, fmt.Errorf("failed to get food plans: %w", err)
	}

	if popular == nil {
		return plans, nil
	}

	return shared.Filter(plans, func(p model.FoodPlan) bool { return p.Popular == *popular }), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.FoodPlan, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	plan, found, err := s.repo.Find(ctx, func(p model.FoodPlan) bool { return p.ID == id })
	if err != nil {
		log.Error().Err(err).Msg("failed to get food plan")

		return res, fmt.Errorf("failed to get food plan: %w", err)
	}

	if !found {
		return res, failure.NotFound("food plan not found") //nolint:wrapcheck
	}

	return plan, nil
}

// Save creates a plan when editID is empty and otherwise replaces it in place.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveFoodPlanRequest, editID string) (res dto.SaveFoodPlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id := editID
	outcome := constant.OutcomeUpdated

	if id == constant.Empty {
		id = shared.NewID(constant.IDPrefixFoodPlan)
		outcome = constant.OutcomeCreated
	}

	plan := req.ToModel(id)

	err = s.repo.Mutate(ctx, func(plans *[]model.FoodPlan) error {
		res.Outcome = outcome

		if editID == constant.Empty {
			*plans = append(*plans, plan)

			return nil
		}

		idx := slices.IndexFunc(*plans, func(p model.FoodPlan) bool { return p.ID == editID })
		if idx == -1 {
			res.Outcome = constant.OutcomeNotFound

			return store.ErrNoChange
		}

		(*plans)[idx] = plan

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save food plan")

		return res, fmt.Errorf("failed to save food plan: %w", err)
	}

	if res.Outcome == constant.OutcomeNotFound {
		log.Warn().Str("id", editID).Msg("food plan to update not found, ignoring")

		return res, nil
	}

	res.FoodPlan = &plan

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.DeleteFoodPlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.Mutate(ctx, func(plans *[]model.FoodPlan) error {
		res.Outcome = constant.OutcomeDeleted
		before := len(*plans)
		*plans = slices.DeleteFunc(*plans, func(p model.FoodPlan) bool { return p.ID == id })

		if len(*plans) == before {
			res.Outcome = constant.OutcomeNotFound

			return store.ErrNoChange
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete food plan")

		return res, fmt.Errorf("failed to delete food plan: %w", err)
	}

	if res.Outcome == constant.OutcomeNotFound {
		log.Warn().Str("id", id).Msg("food plan to delete not found, ignoring")
	}

	return res, nil
}

// Select remembers the plan for the signed-in user's next booking.
func (s *serviceImpl) Select(ctx context.Context, id string) (res model.FoodPlan, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Select")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.session.Current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get current user")

		return res, fmt.Errorf("failed to get current user: %w", err)
	}

	if user == nil {
		return res, failure.Unauthorized(msgLoginToSelectFood) //nolint:wrapcheck
	}

	res, err = s.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.session.SetSelectedFood(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to store selected food plan")

		return res, fmt.Errorf("failed to store selected food plan: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seeded, err := s.repo.Seed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed food plans")

		return fmt.Errorf("failed to seed food plans: %w", err)
	}

	if seeded {
		log.Info().Msg("Seeded default food plans")
	}

	return nil
}
