package analytics

import (
	"net/http"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/analytics/model/dto"
	"stayadmin/internal/domains/analytics/service"
	"stayadmin/shared/constant"
	"stayadmin/shared/validator"
	"stayadmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAnalytics)
	})
}

// GetAnalytics aggregates the filtered booking set for the dashboard.
// @Summary Get booking analytics
// @Description Retrieve revenue, platform shares, occupancy and per-month room performance for the filtered bookings.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param platform query string false "Filter by platform ('All' disables the filter)"
// @Param room_id query string false "Filter by room ID ('All' disables the filter)"
// @Param start_date query string false "Bookings checking in on or after this date (YYYY-MM-DD)"
// @Param end_date query string false "Bookings checking out on or before this date (YYYY-MM-DD)"
// @Success 200 {object} dto.AnalyticsResponse "Analytics aggregates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	filter := dto.AnalyticsFilter{
		Platform:  r.URL.Query().Get(constant.RequestParamPlatform),
		RoomID:    r.URL.Query().Get(constant.RequestParamRoomID),
		StartDate: r.URL.Query().Get(constant.RequestParamStartDate),
		EndDate:   r.URL.Query().Get(constant.RequestParamEndDate),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate analytics filters")

		response.WithError(w, err)

		return
	}

	analytics, err := handler.service.Get(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Analytics retrieved successfully")

	response.WithJSON(w, http.StatusOK, analytics)
}
