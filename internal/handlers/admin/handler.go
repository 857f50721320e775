package admin

import (
	"agency/infras/otel"
	consultationDto "agency/internal/domains/consultation/model/dto"
	consultationService "agency/internal/domains/consultation/service"
	"agency/internal/domains/slot/model"
	slotDto "agency/internal/domains/slot/model/dto"
	slotService "agency/internal/domains/slot/service"
	"agency/shared/constant"
	gDto "agency/shared/dto"
	"agency/shared/failure"
	"agency/shared/validator"
	"agency/transport/http/response"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryDayOfWeek = "dayOfWeek"
	queryActive    = "active"
)

var slotSortFields = []string{model.FieldDayOfWeek, model.FieldStartTime, model.FieldIsActive, constant.FieldModifiedAt}

// Handler serves the operator surface: bookings, the weekly schedule and blocked dates.
type Handler struct {
	consultations consultationService.Consultation
	catalog       slotService.Catalog
	otel          otel.Otel
}

func New(consultations consultationService.Consultation, catalog slotService.Catalog, otel otel.Otel) Handler {
	return Handler{
		consultations: consultations,
		catalog:       catalog,
		otel:          otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/consultations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUpcoming)
		routerGroup.Get("/{bookingId}", handler.GetConsultation)
		routerGroup.Patch("/{bookingId}/status", handler.UpdateStatus)
	})

	router.Get("/stats", handler.GetStats)

	router.Route("/slots", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSlots)
		routerGroup.Post("/", handler.CreateSlot)
		routerGroup.Post("/defaults", handler.SeedDefaults)
		routerGroup.Patch("/{id}", handler.UpdateSlot)
	})

	router.Route("/blocked-dates", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBlockedDates)
		routerGroup.Post("/", handler.BlockDate)
		routerGroup.Delete("/{id}", handler.UnblockDate)
	})
}

// GetUpcoming lists bookings in the coming days.
// @Summary List upcoming consultations
// @Description Confirmed consultations scheduled between now and the given number of days ahead, earliest first.
// @Tags Admin
// @Produce json
// @Param days query integer false "Days ahead (default 7)"
// @Success 200 {object} response.Data[[]consultationDto.ConsultationResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/consultations [get]
// @Security BearerAuth
func (handler *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcoming")
	defer scope.End()

	days := 0

	if raw := r.URL.Query().Get(constant.RequestParamDays); raw != constant.Empty {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			err := failure.BadRequestFromString("days must be a positive integer")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		days = parsed
	}

	res, err := handler.consultations.Upcoming(ctx, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming consultations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetConsultation returns one booking.
// @Summary Get a consultation
// @Tags Admin
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Data[consultationDto.ConsultationResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/consultations/{bookingId} [get]
// @Security BearerAuth
func (handler *Handler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsultation")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	res, err := handler.consultations.Get(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to get consultation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateStatus moves a booking through its lifecycle.
// @Summary Update consultation status
// @Description Applies a lifecycle transition. Cancelling here also releases the slot and notifies the client.
// @Tags Admin
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body consultationDto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[consultationDto.ConsultationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/consultations/{bookingId}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamBookingID)
	req := consultationDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.consultations.UpdateStatus(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to update consultation status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Consultation " + bookingID + " set to " + req.Status + " by " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetStats returns booking counters.
// @Summary Consultation statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[consultationDto.StatsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.consultations.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consultation stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSlots lists the weekly schedule.
// @Summary List time slots
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param dayOfWeek query integer false "Filter by weekday (0 = Sunday)"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[slotDto.GetSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy != constant.Empty && !slices.Contains(slotSortFields, queryParams.SortBy) {
		err := failure.BadRequestFromString("sort_by must be one of day_of_week, start_time, is_active, modified_at")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if raw := r.URL.Query().Get(queryDayOfWeek); raw != constant.Empty {
		day, err := strconv.Atoi(raw)
		if err != nil || day < 0 || day > 6 {
			err := failure.BadRequestFromString("dayOfWeek must be between 0 and 6")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDayOfWeek,
			Operator: gDto.FilterOperatorEq,
			Value:    day,
			Table:    model.TableName,
		})
	}

	if raw := r.URL.Query().Get(queryActive); raw != constant.Empty {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			err := failure.BadRequestFromString("active must be a boolean")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	res, err := handler.catalog.ListSlots(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get time slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateSlot adds a weekly slot.
// @Summary Create a time slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body slotDto.CreateSlotRequest true "Slot"
// @Success 201 {object} response.Data[slotDto.SlotResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "A slot already starts at that time"
// @Failure 500 {object} response.Error
// @Router /v1/admin/slots [post]
// @Security BearerAuth
func (handler *Handler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSlot")
	defer scope.End()

	req := slotDto.CreateSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.catalog.CreateSlot(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create time slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time slot created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateSlot toggles a slot on or off.
// @Summary Activate or deactivate a time slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body slotDto.UpdateSlotRequest true "Active flag"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/slots/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := slotDto.UpdateSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.catalog.SetSlotActive(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update time slot")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Time slot updated successfully")
}

// SeedDefaults installs the default weekday schedule.
// @Summary Seed the default schedule
// @Description Inserts 09:00, 10:00, 11:00, 14:00, 15:00 and 16:00 for Monday to Friday, skipping existing slots.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[slotDto.SeedDefaultsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/slots/defaults [post]
// @Security BearerAuth
func (handler *Handler) SeedDefaults(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SeedDefaults")
	defer scope.End()

	res, err := handler.catalog.SeedDefaults(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to seed default time slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBlockedDates lists blocked dates in an optional range.
// @Summary List blocked dates
// @Tags Admin
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]slotDto.BlockedDateResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/blocked-dates [get]
// @Security BearerAuth
func (handler *Handler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedDates")
	defer scope.End()

	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	res, err := handler.catalog.ListBlockedDates(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// BlockDate closes a whole day or a window of it.
// @Summary Block a date
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body slotDto.BlockDateRequest true "Blocked date"
// @Success 201 {object} response.Data[slotDto.BlockedDateResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/blocked-dates [post]
// @Security BearerAuth
func (handler *Handler) BlockDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockDate")
	defer scope.End()

	req := slotDto.BlockDateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.catalog.BlockDate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block date")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Date blocked " + res.Date)

	response.WithJSON(w, http.StatusCreated, res)
}

// UnblockDate removes a blocked date.
// @Summary Unblock a date
// @Tags Admin
// @Produce json
// @Param id path string true "Blocked date ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/blocked-dates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) UnblockDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.catalog.UnblockDate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to unblock date")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blocked date removed successfully")
}
