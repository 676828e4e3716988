package occupancy

import (
	"net/http"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/occupancy/service"
	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
	"stayadmin/shared/timezone"
	"stayadmin/transport/http/response"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Occupancy
	otel    otel.Otel
}

func New(service service.Occupancy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/occupancy", func(routerGroup chi.Router) {
		routerGroup.Get("/calendar", handler.GetCalendar)
	})
}

// GetCalendar lays out the monthly occupancy grid.
// @Summary Get the occupancy calendar
// @Description Retrieve the 42-cell month grid with positioned booking bars. Defaults to the current month.
// @Tags Occupancy
// @Accept json
// @Produce json
// @Param year query int false "Calendar year"
// @Param month query int false "Calendar month (1-12)"
// @Success 200 {object} dto.CalendarResponse "Calendar layout"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/occupancy/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	now := timezone.Now()
	year := now.Year()
	month := now.Month()

	if rawYear := r.URL.Query().Get(constant.RequestParamYear); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid year"))

			return
		}

		year = parsed
	}

	if rawMonth := r.URL.Query().Get(constant.RequestParamMonth); rawMonth != "" {
		parsed, err := strconv.Atoi(rawMonth)
		if err != nil || parsed < 1 || parsed > 12 {
			response.WithError(w, failure.BadRequestFromString("invalid month"))

			return
		}

		month = time.Month(parsed)
	}

	calendar, err := handler.service.Calendar(ctx, year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy calendar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy calendar retrieved successfully")

	response.WithJSON(w, http.StatusOK, calendar)
}
