package service

import (
	"context"
	"fmt"
	"slices"

	"hostel/infras/otel"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/room/model/dto"
	"hostel/internal/domains/room/repository"
	"hostel/internal/domains/store"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Room interface {
	List(ctx context.Context, roomType string) ([]model.Room, error)
	Get(ctx context.Context, id string) (model.Room, error)
	Save(ctx context.Context, req dto.SaveRoomRequest, editID string) (dto.SaveRoomResponse, error)
	Delete(ctx context.Context, id string) (dto.DeleteRoomResponse, error)
	Seed(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// List returns the catalog in stored order, optionally narrowed to one room type.
func (s *serviceImpl) List(ctx context.Context, roomType string) (res []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.All(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	if roomType == constant.Empty || roomType == constant.FilterAll {
		return rooms, nil
	}

	return shared.Filter(rooms, func(r model.Room) bool { return r.Type == roomType }), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, found, err := s.repo.Find(ctx, func(r model.Room) bool { return r.ID == id })
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if !found {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return room, nil
}

// Save creates a room when editID is empty and otherwise replaces the room in place.
// A missing editID is reported as OutcomeNotFound and nothing is written.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveRoomRequest, editID string) (res dto.SaveRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id := editID
	outcome := constant.OutcomeUpdated

	if id == constant.Empty {
		id = shared.NewID(constant.IDPrefixRoom)
		outcome = constant.OutcomeCreated
	}

	room := req.ToModel(id)

	err = s.repo.Mutate(ctx, func(rooms *[]model.Room) error {
		res.Outcome = outcome

		if editID == constant.Empty {
			*rooms = append(*rooms, room)

			return nil
		}

		idx := slices.IndexFunc(*rooms, func(r model.Room) bool { return r.ID == editID })
		if idx == -1 {
			res.Outcome = constant.OutcomeNotFound

			return store.ErrNoChange
		}

		(*rooms)[idx] = room

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save room")

		return res, fmt.Errorf("failed to save room: %w", err)
	}

	if res.Outcome == constant.OutcomeNotFound {
		log.Warn().Str("id", editID).Msg("room to update not found, ignoring")

		return res, nil
	}

	res.Room = &room

	return res, nil
}

// Delete removes the room. Bookings keep their snapshot of it.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.DeleteRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.Mutate(ctx, func(rooms *[]model.Room) error {
		res.Outcome = constant.OutcomeDeleted
		before := len(*rooms)
		*rooms = slices.DeleteFunc(*rooms, func(r model.Room) bool { return r.ID == id })

		if len(*rooms) == before {
			res.Outcome = constant.OutcomeNotFound

			return store.ErrNoChange
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return res, fmt.Errorf("failed to delete room: %w", err)
	}

	if res.Outcome == constant.OutcomeNotFound {
		log.Warn().Str("id", id).Msg("room to delete not found, ignoring")
	}

	return res, nil
}

// Seed persists the default catalog on first start.
func (s *serviceImpl) Seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seeded, err := s.repo.Seed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed rooms")

		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	if seeded {
		log.Info().Msg("Seeded default room catalog")
	}

	return nil
}
