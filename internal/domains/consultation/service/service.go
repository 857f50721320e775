package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/email"
	"agency/infras/kafka"
	"agency/infras/metrics"
	"agency/infras/otel"
	"agency/infras/s3"
	"agency/infras/zoom"
	availabilityDto "agency/internal/domains/availability/model/dto"
	availabilityService "agency/internal/domains/availability/service"
	"agency/internal/domains/consultation/model"
	"agency/internal/domains/consultation/model/dto"
	"agency/shared/constant"
	"agency/shared/datetime"
	"agency/shared/failure"
	"agency/shared/task"
	"agency/shared/timezone"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	opBook         = "book"
	opCancel       = "cancel"
	opReschedule   = "reschedule"
	opUpdateStatus = "update_status"

	outcomeSlotTaken = "slot_taken"
	outcomeNotFound  = "not_found"
	outcomeInvalid   = "invalid"

	provisionerCreate = "create"
	provisionerDelete = "delete"

	msgSlotTaken      = "This time slot is no longer available. Please choose another time."
	msgNotFound       = "Booking not found"
	msgNotReschedule  = "Only pending or confirmed consultations can be rescheduled"
	msgTransitionFmt  = "Cannot change status from %s to %s"
	detailsSlotsField = "availableSlots"
)

type Consultation interface {
	Book(ctx context.Context, req dto.BookRequest) (dto.BookResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	Reschedule(ctx context.Context, bookingID string, req dto.RescheduleRequest) (dto.RescheduleResponse, error)
	Slots(ctx context.Context, date string) (availabilityDto.SlotsResponse, error)
	Get(ctx context.Context, bookingID string) (dto.ConsultationResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req dto.UpdateStatusRequest) (dto.ConsultationResponse, error)
	Upcoming(ctx context.Context, days int) ([]dto.ConsultationResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	ledger      Ledger
	resolver    availabilityService.Resolver
	provisioner zoom.Provisioner
	notifier    Notifier
	invites     *invites
	events      kafka.Client
	runner      task.Runner
	metrics     *metrics.Metrics
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	ledger Ledger,
	resolver availabilityService.Resolver,
	provisioner zoom.Provisioner,
	sender email.Sender,
	store s3.S3,
	events kafka.Client,
	runner task.Runner,
	m *metrics.Metrics,
	cfg *config.Config,
	otel otel.Otel,
) Consultation {
	return &serviceImpl{
		ledger:      ledger,
		resolver:    resolver,
		provisioner: provisioner,
		notifier:    NewNotifier(sender, cfg, m),
		invites:     newInvites(store, cfg),
		events:      events,
		runner:      runner,
		metrics:     m,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest) (res dto.BookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, clock, err := parseSlot(req.PreferredDate, req.PreferredTime)
	if err != nil {
		s.metrics.ObserveBooking(opBook, outcomeInvalid)

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	available, err := s.resolver.IsSlotAvailable(ctx, date, clock)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")
		s.metrics.ObserveBooking(opBook, metrics.OutcomeFailure)

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if !available {
		s.metrics.ObserveBooking(opBook, outcomeSlotTaken)

		return res, s.slotTaken(ctx, date)
	}

	booking, err := s.ledger.Create(ctx, req.ToModel(actor(ctx), date, clock))
	if err != nil {
		if errors.Is(err, model.ErrSlotTaken) {
			s.metrics.ObserveBooking(opBook, outcomeSlotTaken)

			return res, s.slotTaken(ctx, date)
		}

		log.Error().Err(err).Msg("failed to create booking")
		s.metrics.ObserveBooking(opBook, metrics.OutcomeFailure)

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	var ref *model.MeetingRef

	if booking.IsVideo() {
		ref = s.provision(ctx, booking)
		booking = s.attach(ctx, booking, ref)
	}

	s.metrics.ObserveBooking(opBook, metrics.OutcomeSuccess)

	s.afterBook(ctx, booking, ref)

	res.FromModel(booking, ref)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ledger.FindByBookingID(ctx, bookingID)
	if err != nil {
		return s.lookupFailure(opCancel, err)
	}

	if booking.Status == model.StatusCancelled {
		log.Info().Str("bookingId", bookingID).Msg("booking already cancelled")

		return nil
	}

	if !model.CanTransition(booking.Status, model.StatusCancelled) {
		s.metrics.ObserveBooking(opCancel, outcomeInvalid)

		return failure.Conflict(fmt.Sprintf(msgTransitionFmt, booking.Status, model.StatusCancelled)) // nolint:wrapcheck
	}

	s.deleteMeeting(ctx, booking)

	cancelled, err := s.ledger.UpdateStatus(ctx, bookingID, model.StatusCancelled, "Cancelled at: "+timezone.Now().Format(time.RFC3339))
	if errors.Is(err, model.ErrInvalidTransition) && s.cancelledMeanwhile(ctx, bookingID) {
		log.Info().Str("bookingId", bookingID).Msg("booking cancelled by a concurrent request")

		return nil
	}

	if err != nil {
		return s.writeFailure(opCancel, "failed to cancel booking", err)
	}

	s.metrics.ObserveBooking(opCancel, metrics.OutcomeSuccess)

	s.afterCancel(ctx, cancelled)

	return nil
}

func (s *serviceImpl) Reschedule(
	ctx context.Context,
	bookingID string,
	req dto.RescheduleRequest,
) (res dto.RescheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, clock, err := parseSlot(req.NewDate, req.NewTime)
	if err != nil {
		s.metrics.ObserveBooking(opReschedule, outcomeInvalid)

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	previous, err := s.ledger.FindByBookingID(ctx, bookingID)
	if err != nil {
		return res, s.lookupFailure(opReschedule, err)
	}

	if !model.IsReschedulable(previous.Status) {
		s.metrics.ObserveBooking(opReschedule, outcomeInvalid)

		return res, failure.Conflict(msgNotReschedule) // nolint:wrapcheck
	}

	available, err := s.resolver.IsSlotAvailable(ctx, date, clock)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")
		s.metrics.ObserveBooking(opReschedule, metrics.OutcomeFailure)

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if !available {
		s.metrics.ObserveBooking(opReschedule, outcomeSlotTaken)

		return res, s.slotTaken(ctx, date)
	}

	booking, err := s.ledger.Reschedule(ctx, bookingID, date, clock)
	if err != nil {
		if errors.Is(err, model.ErrSlotTaken) {
			s.metrics.ObserveBooking(opReschedule, outcomeSlotTaken)

			return res, s.slotTaken(ctx, date)
		}

		return res, s.writeFailure(opReschedule, "failed to reschedule booking", err)
	}

	if booking.IsVideo() {
		s.deleteMeeting(ctx, previous)
		booking = s.attach(ctx, booking, s.provision(ctx, booking))
	}

	s.metrics.ObserveBooking(opReschedule, metrics.OutcomeSuccess)

	s.afterReschedule(ctx, previous, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Slots(ctx context.Context, date string) (res availabilityDto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.resolver.Lookup(ctx, date)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ledger.FindByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return res, failure.NotFound(msgNotFound) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(
	ctx context.Context,
	bookingID string,
	req dto.UpdateStatusRequest,
) (res dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ledger.UpdateStatus(ctx, bookingID, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, model.ErrInvalidTransition) {
			s.metrics.ObserveBooking(opUpdateStatus, outcomeInvalid)

			return res, failure.Conflict(err.Error()) // nolint:wrapcheck
		}

		if errors.Is(err, model.ErrNotFound) {
			return res, s.lookupFailure(opUpdateStatus, err)
		}

		return res, s.writeFailure(opUpdateStatus, "failed to update booking status", err)
	}

	s.metrics.ObserveBooking(opUpdateStatus, metrics.OutcomeSuccess)

	if booking.Status == model.StatusCancelled {
		s.deleteMeeting(ctx, booking)
		s.afterCancel(ctx, booking)
	} else {
		s.publish(ctx, newEvent(EventStatusChanged, booking))
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Upcoming(ctx context.Context, days int) (res []dto.ConsultationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.ledger.Upcoming(ctx, days)
	if err != nil {
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		return nil, fmt.Errorf("failed to get upcoming bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	stats, err := s.ledger.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking stats")

		return res, fmt.Errorf("failed to get booking stats: %w", err)
	}

	res.FromModel(stats)

	return res, nil
}

// slotTaken builds the 400 answer that carries the current open slots for date.
func (s *serviceImpl) slotTaken(ctx context.Context, date time.Time) error {
	available := []string{}

	slots, err := s.resolver.AvailableSlots(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", datetime.FormatDate(date)).Msg("failed to list slots for conflict answer")
	}

	for _, slot := range slots {
		if slot.Available {
			available = append(available, slot.Display)
		}
	}

	return failure.BadRequestWithDetails(msgSlotTaken, map[string]any{detailsSlotsField: available}) // nolint:wrapcheck
}

// provision creates the video meeting. Failures are logged and counted, never returned.
func (s *serviceImpl) provision(ctx context.Context, booking model.Consultation) *model.MeetingRef {
	meeting, err := s.provisioner.CreateMeeting(ctx, zoom.MeetingRequest{
		Topic:           fmt.Sprintf("Consultation with %s", booking.Name),
		Start:           booking.ScheduledAt,
		DurationMinutes: s.cfg.App.Booking.MeetingDurationMinutes,
		Agenda:          booking.ProjectDetails,
	})
	s.metrics.ObserveProvisioner(provisionerCreate, err)

	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to create meeting, continuing without it")

		return nil
	}

	return &model.MeetingRef{
		URL:      meeting.JoinURL,
		ID:       meeting.MeetingID,
		Password: meeting.Password,
		HostURL:  meeting.HostURL,
	}
}

// attach stores ref on the booking and returns the updated row, or booking itself when the write fails.
func (s *serviceImpl) attach(ctx context.Context, booking model.Consultation, ref *model.MeetingRef) model.Consultation {
	if ref == nil && booking.Meeting() == nil {
		return booking
	}

	updated, err := s.ledger.AttachMeeting(ctx, booking.BookingID, ref)
	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to attach meeting to booking")

		return booking
	}

	return updated
}

func (s *serviceImpl) deleteMeeting(ctx context.Context, booking model.Consultation) {
	meetingID := booking.ExtractMeetingID()
	if meetingID == "" {
		return
	}

	err := s.provisioner.DeleteMeeting(ctx, meetingID)
	s.metrics.ObserveProvisioner(provisionerDelete, err)

	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.BookingID).Str("meetingId", meetingID).Msg("failed to delete meeting")
	}
}

func (s *serviceImpl) afterBook(ctx context.Context, booking model.Consultation, ref *model.MeetingRef) {
	s.runner.Go(ctx, "notify."+notificationBooked, func(ctx context.Context) error {
		return s.notifier.Booked(ctx, booking, ref, s.invites.Publish(ctx, booking, inviteSequence(booking)))
	})

	s.publish(ctx, newEvent(EventBooked, booking))
}

func (s *serviceImpl) afterCancel(ctx context.Context, booking model.Consultation) {
	s.runner.Go(ctx, "notify."+notificationCancelled, func(ctx context.Context) error {
		s.invites.Remove(ctx, booking.BookingID)

		return s.notifier.Cancelled(ctx, booking)
	})

	s.publish(ctx, newEvent(EventCancelled, booking))
}

func (s *serviceImpl) afterReschedule(ctx context.Context, previous, booking model.Consultation) {
	s.runner.Go(ctx, "notify."+notificationRescheduled, func(ctx context.Context) error {
		return s.notifier.Rescheduled(ctx, previous, booking, s.invites.Publish(ctx, booking, inviteSequence(booking)))
	})

	event := newEvent(EventRescheduled, booking)
	event.PreviousDate = datetime.FormatDate(previous.Date())
	event.PreviousTime = previous.RequestedTime

	s.publish(ctx, event)
}

// cancelledMeanwhile reports whether a concurrent request already moved the booking to cancelled.
func (s *serviceImpl) cancelledMeanwhile(ctx context.Context, bookingID string) bool {
	current, err := s.ledger.FindByBookingID(ctx, bookingID)
	if err != nil {
		log.Warn().Err(err).Str("bookingId", bookingID).Msg("failed to re-read booking after a lost transition")

		return false
	}

	return current.Status == model.StatusCancelled
}

func (s *serviceImpl) lookupFailure(operation string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		s.metrics.ObserveBooking(operation, outcomeNotFound)

		return failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	log.Error().Err(err).Str("operation", operation).Msg("failed to find booking")
	s.metrics.ObserveBooking(operation, metrics.OutcomeFailure)

	return fmt.Errorf("failed to find booking: %w", err)
}

func (s *serviceImpl) writeFailure(operation, msg string, err error) error {
	if errors.Is(err, model.ErrInvalidTransition) {
		s.metrics.ObserveBooking(operation, outcomeInvalid)

		return failure.Conflict(err.Error()) // nolint:wrapcheck
	}

	log.Error().Err(err).Str("operation", operation).Msg(msg)
	s.metrics.ObserveBooking(operation, metrics.OutcomeFailure)

	return fmt.Errorf("%s: %w", msg, err)
}

func parseSlot(date, clock string) (time.Time, datetime.ClockTime, error) {
	day, err := datetime.ParseDate(date)
	if err != nil {
		return time.Time{}, 0, err // nolint:wrapcheck
	}

	at, err := datetime.ParseClock(clock)
	if err != nil {
		return time.Time{}, 0, err // nolint:wrapcheck
	}

	return day, at, nil
}

// inviteSequence increases with every reschedule so calendar clients replace the earlier invite.
func inviteSequence(booking model.Consultation) int {
	if booking.Notes == nil {
		return 0
	}

	return strings.Count(*booking.Notes, "Rescheduled from")
}
