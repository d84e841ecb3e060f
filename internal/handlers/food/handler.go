package food

import (
	"hostel/infras/otel"
	"hostel/internal/domains/food/model/dto"
	"hostel/internal/domains/food/service"
	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgFoodAdded    = "Food plan added!"
	msgFoodUpdated  = "Food plan updated!"
	msgFoodDeleted  = "Food plan deleted"
	msgFoodNotFound = "Food plan not found, nothing changed"
	msgFoodSelected = "Food plan selected! Choose a room to complete booking."
)

type Handler struct {
	service service.FoodPlan
	otel    otel.Otel
}

func New(service service.FoodPlan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/food-plans", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFoodPlans)
		routerGroup.Get("/{id}", handler.GetFoodPlanByID)
		routerGroup.Post("/{id}/select", handler.SelectFoodPlan)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/food-plans", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFoodPlan)
		routerGroup.Put("/{id}", handler.UpdateFoodPlan)
		routerGroup.Delete("/{id}", handler.DeleteFoodPlan)
	})
}

// GetFoodPlans lists the food plans.
// @Summary Get all food plans
// @Tags Food
// @Produce json
// @Param popular query boolean false "Only popular or only regular plans"
// @Success 200 {object} response.Data[[]model.FoodPlan]
// @Failure 500 {object} response.Error
// @Router /v1/food-plans [get]
func (handler *Handler) GetFoodPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoodPlans")
	defer scope.End()

	popular := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamPopular))

	plans, err := handler.service.List(ctx, popular)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plans)
}

// GetFoodPlanByID
// @Summary Get food plan by ID
// @Tags Food
// @Produce json
// @Param id path string true "Food plan ID"
// @Success 200 {object} response.Data[model.FoodPlan]
// @Failure 404 {object} response.Error
// @Router /v1/food-plans/{id} [get]
func (handler *Handler) GetFoodPlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoodPlanByID")
	defer scope.End()

	plan, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plan)
}

// SelectFoodPlan remembers a plan for the next booking of the signed-in user.
// @Summary Select a food plan
// @Tags Food
// @Produce json
// @Param id path string true "Food plan ID"
// @Success 200 {object} response.Data[model.FoodPlan]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/food-plans/{id}/select [post]
func (handler *Handler) SelectFoodPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectFoodPlan")
	defer scope.End()

	plan, err := handler.service.Select(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to select food plan")

		response.WithError(w, err)

		return
	}

	response.WithMessageJSON(w, http.StatusOK, msgFoodSelected, plan)
}

// CreateFoodPlan
// @Summary Create a food plan
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SaveFoodPlanRequest true "Food plan"
// @Success 201 {object} response.Data[dto.SaveFoodPlanResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/food-plans [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateFoodPlan(w http.ResponseWriter, r *http.Request) {
	handler.save(w, r, constant.Empty)
}

// UpdateFoodPlan
// @Summary Update a food plan
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Food plan ID"
// @Param request body dto.SaveFoodPlanRequest true "Food plan"
// @Success 200 {object} response.Data[dto.SaveFoodPlanResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/food-plans/{id} [put]
// @Security ApiKeyAuth
func (handler *Handler) UpdateFoodPlan(w http.ResponseWriter, r *http.Request) {
	handler.save(w, r, chi.URLParam(r, constant.RequestParamID))
}

func (handler *Handler) save(w http.ResponseWriter, r *http.Request, editID string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveFoodPlan")
	defer scope.End()

	req := dto.SaveFoodPlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Save(ctx, req, editID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save food plan")

		response.WithError(w, err)

		return
	}

	switch res.Outcome {
	case constant.OutcomeCreated:
		response.WithMessageJSON(w, http.StatusCreated, msgFoodAdded, res)
	case constant.OutcomeNotFound:
		response.WithMessageJSON(w, http.StatusOK, msgFoodNotFound, res)
	default:
		response.WithMessageJSON(w, http.StatusOK, msgFoodUpdated, res)
	}
}

// DeleteFoodPlan
// @Summary Delete a food plan
// @Tags Admin
// @Produce json
// @Param id path string true "Food plan ID"
// @Success 200 {object} response.Data[dto.DeleteFoodPlanResponse]
// @Router /v1/admin/food-plans/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteFoodPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFoodPlan")
	defer scope.End()

	res, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete food plan")

		response.WithError(w, err)

		return
	}

	if res.Outcome == constant.OutcomeNotFound {
		response.WithMessageJSON(w, http.StatusOK, msgFoodNotFound, res)

		return
	}

	response.WithMessageJSON(w, http.StatusOK, msgFoodDeleted, res)
}
