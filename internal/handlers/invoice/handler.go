package invoice

import (
	"net/http"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/invoice/model/dto"
	"stayadmin/internal/domains/invoice/service"
	"stayadmin/shared/constant"
	"stayadmin/shared/validator"
	"stayadmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BuildInvoice)
	})
}

// BuildInvoice assembles a printable invoice payload for a booking.
// @Summary Build an invoice payload
// @Description Assemble the flat invoice record for a booking, with amounts formatted in Indian digit grouping.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.BuildInvoiceRequest true "Build Invoice Request"
// @Success 200 {object} dto.InvoiceResponse "Invoice payload"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [post]
// @Security BearerAuth
func (handler *Handler) BuildInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BuildInvoice")
	defer scope.End()

	req := dto.BuildInvoiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	invoice, err := handler.service.Build(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice built successfully for booking " + req.BookingID)

	response.WithJSON(w, http.StatusOK, invoice)
}
