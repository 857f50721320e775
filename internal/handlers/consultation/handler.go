package consultation

import (
	"agency/infras/otel"
	availabilityDto "agency/internal/domains/availability/model/dto"
	"agency/internal/domains/consultation/model/dto"
	"agency/internal/domains/consultation/service"
	"agency/shared/constant"
	"agency/shared/validator"
	"agency/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Consultation
	otel    otel.Otel
}

func New(service service.Consultation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/consultations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Book)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Delete("/{bookingId}", handler.Cancel)
		routerGroup.Patch("/{bookingId}", handler.Reschedule)
	})
}

// Book handles a new consultation booking.
// @Summary Book a consultation
// @Description Books a free slot. Video consultations get a meeting link, or "Will be sent separately" when the provider is down.
// @Tags Consultation
// @Accept json
// @Produce json
// @Param request body dto.BookRequest true "Booking request"
// @Success 200 {object} response.Data[dto.BookResponse]
// @Failure 400 {object} response.Error "Validation failed, or the slot is taken (details.availableSlots)"
// @Failure 500 {object} response.Error
// @Router /v1/consultations [post]
func (handler *Handler) Book(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	req := dto.BookRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book consultation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Consultation booked " + res.BookingID)

	response.WithJSON(w, http.StatusOK, res)
}

// GetSlots lists the slots of a day with their availability.
// @Summary Get available slots
// @Description Lists the configured slots of a date, each marked available or not.
// @Tags Consultation
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[availabilityDto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consultations/slots [get]
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(constant.RequestParamDate, date, "required,isodate"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	var (
		res availabilityDto.SlotsResponse
		err error
	)

	res, err = handler.service.Slots(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Cancel cancels a booking. Cancelling twice succeeds.
// @Summary Cancel a consultation
// @Tags Consultation
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consultations/{bookingId} [delete]
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	if err := handler.service.Cancel(ctx, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to cancel consultation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Consultation cancelled " + bookingID)

	response.WithMessage(w, http.StatusOK, "Consultation cancelled successfully")
}

// Reschedule moves a booking to another slot.
// @Summary Reschedule a consultation
// @Tags Consultation
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body dto.RescheduleRequest true "New slot"
// @Success 200 {object} response.Data[dto.RescheduleResponse]
// @Failure 400 {object} response.Error "Validation failed, or the slot is taken (details.availableSlots)"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consultations/{bookingId} [patch]
func (handler *Handler) Reschedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reschedule")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)
	req := dto.RescheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reschedule(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to reschedule consultation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Consultation rescheduled " + bookingID)

	response.WithJSON(w, http.StatusOK, res)
}
