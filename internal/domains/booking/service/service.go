package service

import (
	"context"
	"fmt"
	"slices"

	"hostel/infras/kafka"
	"hostel/infras/otel"
	"hostel/internal/domains/booking/model"
	"hostel/internal/domains/booking/model/dto"
	"hostel/internal/domains/booking/repository"
	foodModel "hostel/internal/domains/food/model"
	foodRepo "hostel/internal/domains/food/repository"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	sessionRepo "hostel/internal/domains/session/repository"
	"hostel/internal/domains/store"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/failure"
	"hostel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgLoginToBook         = "Please login to book a room"
	msgLoginToViewBookings = "Please login to view bookings"
	msgInvalidStatus       = "status must be one of approved rejected"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.UpdateStatusResponse, error)
	ListMine(ctx context.Context) ([]model.Booking, error)
	List(ctx context.Context, status string) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	foodRepo    foodRepo.FoodPlan
	sessionRepo sessionRepo.Session
	publisher   kafka.Publisher
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	foodRepo foodRepo.FoodPlan,
	sessionRepo sessionRepo.Session,
	publisher kafka.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		foodRepo:    foodRepo,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		otel:        otel,
	}
}

func (s *serviceImpl) findRoom(ctx context.Context, id string) (roomModel.Room, bool, error) {
	room, found, err := s.roomRepo.Find(ctx, func(r roomModel.Room) bool { return r.ID == id })
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, false, fmt.Errorf("failed to get room: %w", err)
	}

	return room, found, nil
}

// resolveFood picks the food plan for a booking. A nil id falls back to the
// session's selected plan. An id that matches no plan means no food.
func (s *serviceImpl) resolveFood(ctx context.Context, id *string) (*foodModel.FoodPlan, error) {
	var planID string

	if id != nil {
		planID = *id
	} else {
		selected, err := s.sessionRepo.SelectedFood(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to get selected food plan")

			return nil, fmt.Errorf("failed to get selected food plan: %w", err)
		}

		planID = selected
	}

	if planID == constant.Empty {
		return nil, nil
	}

	plan, found, err := s.foodRepo.Find(ctx, func(p foodModel.FoodPlan) bool { return p.ID == planID })
	if err != nil {
		log.Error().Err(err).Msg("failed to get food plan")

		return nil, fmt.Errorf("failed to get food plan: %w", err)
	}

	if !found {
		log.Warn().Str("foodPlanId", planID).Msg("food plan not found, booking without food")

		return nil, nil
	}

	return &plan, nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	err := s.publisher.Publish(ctx, kafka.Message{
		Key: booking.ID,
		Value: model.Event{
			Type:       eventType,
			OccurredAt: timezone.ISOString(timezone.Now()),
			Booking:    booking,
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("event", eventType).Str("bookingId", booking.ID).Msg("failed to publish booking event")
	}
}

// Quote prices a stay without booking it. An unknown room costs nothing.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, _, err := s.findRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	food, err := s.resolveFood(ctx, req.FoodPlanID)
	if err != nil {
		return res, err
	}

	res = dto.QuoteResponse{
		Cost:         model.ComputeCost(room, food, req.CheckIn, req.CheckOut),
		RoomPrice:    room.Price,
		FoodPlanName: model.NoFoodPlanName,
	}

	if food != nil {
		res.FoodPlanName = food.Name
		res.FoodPrice = food.Price
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.sessionRepo.Current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get current user")

		return res, fmt.Errorf("failed to get current user: %w", err)
	}

	if user == nil {
		return res, failure.Unauthorized(msgLoginToBook) //nolint:wrapcheck
	}

	room, found, err := s.findRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if !found {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	food, err := s.resolveFood(ctx, req.FoodPlanID)
	if err != nil {
		return res, err
	}

	cost := model.ComputeCost(room, food, req.CheckIn, req.CheckOut)
	booking := model.Booking{
		ID:           shared.NewID(constant.IDPrefixBooking),
		UserID:       user.Email,
		UserName:     user.Name,
		RoomID:       room.ID,
		RoomName:     room.Name,
		RoomType:     room.Type,
		RoomPrice:    room.Price,
		FoodPlanName: model.NoFoodPlanName,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Days:         cost.Days,
		RoomCost:     cost.RoomCost,
		FoodCost:     cost.FoodCost,
		TotalCost:    cost.TotalCost,
		Notes:        req.Notes,
		Status:       model.StatusPending,
		BookedAt:     timezone.ISOString(timezone.Now()),
	}

	if food != nil {
		booking.FoodPlanID = &food.ID
		booking.FoodPlanName = food.Name
		booking.FoodPrice = food.Price
	}

	err = s.repo.Mutate(ctx, func(bookings *[]model.Booking) error {
		*bookings = append(*bookings, booking)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.sessionRepo.ClearSelectedFood(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear selected food plan")
	}

	log.Info().Str("bookingId", booking.ID).Str("userId", booking.UserID).Int("totalCost", booking.TotalCost).Msg("booking created")

	s.publish(ctx, model.EventCreated, booking)

	return booking, nil
}

// UpdateStatus overwrites the status of a booking. Decided bookings may be decided again.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.UpdateStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Status != model.StatusApproved && req.Status != model.StatusRejected {
		return res, failure.BadRequestFromString(msgInvalidStatus) //nolint:wrapcheck
	}

	var (
		updated model.Booking
		prior   string
	)

	err = s.repo.Mutate(ctx, func(bookings *[]model.Booking) error {
		res.Outcome = constant.OutcomeUpdated

		idx := slices.IndexFunc(*bookings, func(b model.Booking) bool { return b.ID == id })
		if idx == -1 {
			res.Outcome = constant.OutcomeNotFound

			return store.ErrNoChange
		}

		prior = (*bookings)[idx].Status
		(*bookings)[idx].Status = req.Status
		updated = (*bookings)[idx]

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if res.Outcome == constant.OutcomeNotFound {
		log.Warn().Str("bookingId", id).Msg("booking to update not found, ignoring")

		return res, nil
	}

	if prior != model.StatusPending {
		log.Warn().Str("bookingId", id).Str("from", prior).Str("to", req.Status).Msg("booking status changed after it was decided")
	}

	res.Booking = &updated

	s.publish(ctx, model.EventStatusUpdated, updated)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.sessionRepo.Current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get current user")

		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	if user == nil {
		return nil, failure.Unauthorized(msgLoginToViewBookings) //nolint:wrapcheck
	}

	bookings, err := s.repo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	mine := shared.Filter(bookings, func(b model.Booking) bool { return b.UserID == user.Email })

	return shared.NewestFirst(mine), nil
}

// List returns every booking newest first, optionally narrowed to one status.
func (s *serviceImpl) List(ctx context.Context, status string) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	if status != constant.Empty && status != constant.FilterAll {
		bookings = shared.Filter(bookings, func(b model.Booking) bool { return b.Status == status })
	}

	return shared.NewestFirst(bookings), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, found, err := s.repo.Find(ctx, func(b model.Booking) bool { return b.ID == id })
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !found {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}
