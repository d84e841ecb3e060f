package service

import (
	"context"
	"fmt"
	"math"

	"hostel/infras/otel"
	bookingModel "hostel/internal/domains/booking/model"
	bookingRepo "hostel/internal/domains/booking/repository"
	"hostel/internal/domains/dashboard/model/dto"
	foodRepo "hostel/internal/domains/food/repository"
	roomModel "hostel/internal/domains/room/model"
	roomRepo "hostel/internal/domains/room/repository"
	userRepo "hostel/internal/domains/user/repository"
	"hostel/shared"
	"hostel/shared/constant"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.Stats, error)
	Customers(ctx context.Context) ([]dto.Customer, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	foodRepo    foodRepo.FoodPlan
	bookingRepo bookingRepo.Booking
	userRepo    userRepo.User
	otel        otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	foodRepo foodRepo.FoodPlan,
	bookingRepo bookingRepo.Booking,
	userRepo userRepo.User,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		roomRepo:    roomRepo,
		foodRepo:    foodRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		otel:        otel,
	}
}

// Stats summarizes the catalog and bookings. Every room that is not available counts as occupied.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.roomRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	plans, err := s.foodRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food plans")

		return res, fmt.Errorf("failed to get food plans: %w", err)
	}

	bookings, err := s.bookingRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	users, err := s.userRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.TotalRooms = len(rooms)
	res.AvailableRooms = len(shared.Filter(rooms, func(r roomModel.Room) bool { return r.Status == roomModel.StatusAvailable }))
	res.OccupiedRooms = res.TotalRooms - res.AvailableRooms

	if res.TotalRooms > 0 {
		res.OccupiedPercent = int(math.Floor(float64(res.OccupiedRooms)/float64(res.TotalRooms)*100 + 0.5))
	}

	res.AvailablePercent = 100 - res.OccupiedPercent

	res.TotalBookings = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case bookingModel.StatusPending:
			res.PendingBookings++
		case bookingModel.StatusApproved:
			res.TotalRevenue += b.TotalCost
		}
	}

	res.TotalCustomers = len(users)
	res.TotalFoodPlans = len(plans)

	recent := shared.NewestFirst(bookings)
	res.RecentBookings = recent[:min(len(recent), dto.RecentBookingsLimit)]

	return res, nil
}

// Customers lists registered users with how many bookings each has made.
func (s *serviceImpl) Customers(ctx context.Context) (res []dto.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Customers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	users, err := s.userRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	bookings, err := s.bookingRepo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	counts := make(map[string]int, len(users))
	for _, b := range bookings {
		counts[b.UserID]++
	}

	res = make([]dto.Customer, 0, len(users))
	for _, u := range users {
		res = append(res, dto.Customer{
			Profile:      u.Profile(),
			BookingCount: counts[u.Email],
		})
	}

	return res, nil
}
