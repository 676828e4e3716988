package guestdoc

import (
	"net/http"
	"stayadmin/infras/otel"
	"stayadmin/internal/domains/guestdoc/model/dto"
	"stayadmin/internal/domains/guestdoc/service"
	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
	"stayadmin/shared/validator"
	"stayadmin/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formFieldBookingID = "booking_id"
	formFieldGuestSlot = "guest_slot"
)

type Handler struct {
	service service.GuestDoc
	otel    otel.Otel
}

func New(service service.GuestDoc, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guest-documents", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Get("/signed-url", handler.GetSignedURL)
	})
}

// UploadImage stores a guest ID image under the booking's folder.
// @Summary Upload a guest ID image
// @Description Upload a guest ID image for a booking and return its storage URL.
// @Tags GuestDoc
// @Accept multipart/form-data
// @Produce json
// @Param booking_id formData string true "Booking ID the image belongs to"
// @Param guest_slot formData int false "Guest position, 0 for the primary guest"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-documents/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	guestSlot := 0
	if rawSlot := r.FormValue(formFieldGuestSlot); rawSlot != "" {
		guestSlot, err = strconv.Atoi(rawSlot)
		if err != nil || guestSlot < 0 {
			response.WithError(w, failure.BadRequestFromString("invalid guest slot"))

			return
		}
	}

	req := dto.UploadImageRequest{
		BookingID: r.FormValue(formFieldBookingID),
		GuestSlot: guestSlot,
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload guest ID image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest ID image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetSignedURL exchanges a stored object path for a short-lived download URL.
// @Summary Get a signed URL for a guest ID image
// @Description Exchange an object path for a time-limited download URL.
// @Tags GuestDoc
// @Accept json
// @Produce json
// @Param path query string true "Stored object path"
// @Success 200 {object} dto.SignedURLResponse "Signed URL"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest-documents/signed-url [get]
// @Security BearerAuth
func (handler *Handler) GetSignedURL(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSignedURL")
	defer scope.End()

	req := dto.SignedURLRequest{
		Path: r.URL.Query().Get(constant.RequestParamPath),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate signed URL request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SignedURL(ctx, req.Path)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign guest ID image URL")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest ID image URL signed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
