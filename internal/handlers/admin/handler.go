package admin

import (
	"hostel/infras/otel"
	dashboardService "hostel/internal/domains/dashboard/service"
	snapshotService "hostel/internal/domains/snapshot/service"
	"hostel/shared/constant"
	"hostel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	dashboard dashboardService.Dashboard
	snapshot  snapshotService.Snapshot
	otel      otel.Otel
}

func New(dashboard dashboardService.Dashboard, snapshot snapshotService.Snapshot, otel otel.Otel) Handler {
	return Handler{
		dashboard: dashboard,
		snapshot:  snapshot,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)
	router.Get("/customers", handler.GetCustomers)
	router.Post("/snapshots", handler.CreateSnapshot)
}

// GetDashboard
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.Stats]
// @Failure 500 {object} response.Error
// @Router /v1/admin/dashboard [get]
// @Security ApiKeyAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	stats, err := handler.dashboard.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetCustomers
// @Summary Registered customers
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[[]dto.Customer]
// @Failure 500 {object} response.Error
// @Router /v1/admin/customers [get]
// @Security ApiKeyAuth
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	customers, err := handler.dashboard.Customers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customers)
}

// CreateSnapshot exports the whole store to object storage.
// @Summary Export a snapshot
// @Tags Admin
// @Produce json
// @Success 201 {object} response.Data[service.ExportResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/snapshots [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSnapshot")
	defer scope.End()

	res, err := handler.snapshot.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export snapshot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}
