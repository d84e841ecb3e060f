package room

import (
	"hostel/infras/otel"
	"hostel/internal/domains/room/model/dto"
	"hostel/internal/domains/room/service"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgRoomAdded    = "Room added successfully!"
	msgRoomUpdated  = "Room updated successfully!"
	msgRoomDeleted  = "Room deleted"
	msgRoomNotFound = "Room not found, nothing changed"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// AdminRouter mounts the catalog editing routes.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// GetRooms lists the room catalog.
// @Summary Get all rooms
// @Description Retrieve the room catalog, optionally filtered by type.
// @Tags Room
// @Produce json
// @Param type query string false "single, double, shared or all"
// @Success 200 {object} response.Data[[]model.Room] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.List(ctx, r.URL.Query().Get(constant.RequestParamType))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[model.Room] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SaveRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.SaveRoomResponse] "Room added"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	handler.save(w, r, constant.Empty)
}

// UpdateRoom replaces a room in place. An unknown id changes nothing.
// @Summary Update a room
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.SaveRoomRequest true "Room"
// @Success 200 {object} response.Data[dto.SaveRoomResponse] "Room updated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id} [put]
// @Security ApiKeyAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	handler.save(w, r, chi.URLParam(r, constant.RequestParamID))
}

func (handler *Handler) save(w http.ResponseWriter, r *http.Request, editID string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveRoom")
	defer scope.End()

	req := dto.SaveRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Save(ctx, req, editID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save room")

		response.WithError(w, err)

		return
	}

	switch res.Outcome {
	case constant.OutcomeCreated:
		scope.AddEvent("Room created")
		response.WithMessageJSON(w, http.StatusCreated, msgRoomAdded, res)
	case constant.OutcomeNotFound:
		response.WithMessageJSON(w, http.StatusOK, msgRoomNotFound, res)
	default:
		response.WithMessageJSON(w, http.StatusOK, msgRoomUpdated, res)
	}
}

// DeleteRoom removes a room. Bookings of the room are kept.
// @Summary Delete a room
// @Tags Admin
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.DeleteRoomResponse] "Room deleted"
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	res, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	if res.Outcome == constant.OutcomeNotFound {
		response.WithMessageJSON(w, http.StatusOK, msgRoomNotFound, res)

		return
	}

	response.WithMessageJSON(w, http.StatusOK, msgRoomDeleted, res)
}
