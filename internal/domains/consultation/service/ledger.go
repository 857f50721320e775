package service

//go:generate go run go.uber.org/mock/mockgen -source=./ledger.go -destination=../mocks/ledger_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	availabilityService "agency/internal/domains/availability/service"
	"agency/internal/domains/consultation/model"
	"agency/internal/domains/consultation/repository"
	"agency/shared"
	"agency/shared/constant"
	"agency/shared/datetime"
	"agency/shared/lock"
	"agency/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	lockPrefix             = "slot"
	defaultSlotLockSeconds = 10
	defaultUpcomingDays    = 7
)

// Ledger owns the booking records and the status machine.
type Ledger interface {
	Create(ctx context.Context, booking model.Consultation) (model.Consultation, error)
	FindByBookingID(ctx context.Context, bookingID string) (model.Consultation, error)
	UpdateStatus(ctx context.Context, bookingID, status, notes string) (model.Consultation, error)
	Reschedule(ctx context.Context, bookingID string, date time.Time, clock datetime.ClockTime) (model.Consultation, error)
	// AttachMeeting stores ref on the booking. A nil ref clears the meeting columns.
	AttachMeeting(ctx context.Context, bookingID string, ref *model.MeetingRef) (model.Consultation, error)
	Upcoming(ctx context.Context, days int) ([]model.Consultation, error)
	Stats(ctx context.Context) (model.Stats, error)
}

type ledgerImpl struct {
	repo     repository.Consultation
	resolver availabilityService.Resolver
	locker   lock.Locker
	cfg      *config.Config
	otel     otel.Otel
	now      func() time.Time
}

func NewLedger(
	repo repository.Consultation,
	resolver availabilityService.Resolver,
	locker lock.Locker,
	cfg *config.Config,
	otel otel.Otel,
) Ledger {
	return &ledgerImpl{
		repo:     repo,
		resolver: resolver,
		locker:   locker,
		cfg:      cfg,
		otel:     otel,
		now:      timezone.Now,
	}
}

func (l *ledgerImpl) Create(ctx context.Context, booking model.Consultation) (res model.Consultation, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	date := booking.Date()

	clock, err := datetime.ParseClock(booking.RequestedTime)
	if err != nil {
		return res, fmt.Errorf("failed to parse requested time: %w", err)
	}

	booking.BookingID, err = model.GenerateBookingID(l.now())
	if err != nil {
		return res, err
	}

	booking.Status = model.StatusConfirmed
	booking.ScheduledAt = clock.On(date)

	err = l.withSlotLock(ctx, date, clock, func() error {
		if err := l.ensureAvailable(ctx, date, clock); err != nil {
			return err
		}

		return l.repo.Create(ctx, booking)
	})
	if err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	l.resolver.Invalidate(ctx, date)

	log.Info().Str("bookingId", booking.BookingID).Str("date", datetime.FormatDate(date)).
		Str("time", booking.RequestedTime).Msg("booking created")

	return booking, nil
}

func (l *ledgerImpl) FindByBookingID(ctx context.Context, bookingID string) (res model.Consultation, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.FindByBookingID")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = l.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return res, fmt.Errorf("failed to find booking %s: %w", bookingID, err)
	}

	return res, nil
}

func (l *ledgerImpl) UpdateStatus(ctx context.Context, bookingID, status, notes string) (res model.Consultation, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := l.FindByBookingID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if !model.CanTransition(current.Status, status) {
		return res, fmt.Errorf("%w: %s to %s", model.ErrInvalidTransition, current.Status, status)
	}

	now := l.now()

	updated := current
	updated.Status = status
	updated.Notes = ptr(current.AppendNote(model.StatusNote(current.Status, status, now, notes)))
	l.touch(ctx, &updated, now)

	if err = l.repo.UpdateStatus(ctx, updated, current.Status); err != nil {
		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if status == model.StatusCancelled {
		l.resolver.Invalidate(ctx, current.Date())
	}

	return updated, nil
}

func (l *ledgerImpl) Reschedule(
	ctx context.Context,
	bookingID string,
	date time.Time,
	clock datetime.ClockTime,
) (res model.Consultation, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := l.FindByBookingID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if !model.IsReschedulable(current.Status) {
		return res, fmt.Errorf("%w: cannot reschedule a %s booking", model.ErrInvalidTransition, current.Status)
	}

	now := l.now()

	updated := current
	updated.RequestedDate = date
	updated.RequestedTime = clock.Display()
	updated.ScheduledAt = clock.On(date)
	updated.Notes = ptr(current.AppendNote(model.RescheduleNote(current.Date(), current.RequestedTime, now)))
	l.touch(ctx, &updated, now)

	err = l.withSlotLock(ctx, date, clock, func() error {
		if err := l.ensureAvailable(ctx, date, clock); err != nil {
			return err
		}

		return l.repo.Reschedule(ctx, updated)
	})
	if err != nil {
		return res, fmt.Errorf("failed to reschedule booking: %w", err)
	}

	l.resolver.Invalidate(ctx, current.Date())
	l.resolver.Invalidate(ctx, date)

	return updated, nil
}

func (l *ledgerImpl) AttachMeeting(ctx context.Context, bookingID string, ref *model.MeetingRef) (res model.Consultation, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.AttachMeeting")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := l.FindByBookingID(ctx, bookingID)
	if err != nil {
		return res, err
	}

	updated := current
	updated.MeetingURL, updated.MeetingID, updated.MeetingPassword, updated.MeetingHostURL = nil, nil, nil, nil

	if ref != nil {
		updated.MeetingURL = ptr(ref.URL)
		updated.MeetingID = ptr(ref.ID)
		updated.MeetingPassword = ptr(ref.Password)
		updated.MeetingHostURL = ptr(ref.HostURL)
		updated.Notes = ptr(current.AppendNote(model.MeetingNote(*ref)))
	}

	l.touch(ctx, &updated, l.now())

	if err = l.repo.AttachMeeting(ctx, updated); err != nil {
		return res, fmt.Errorf("failed to attach meeting: %w", err)
	}

	return updated, nil
}

func (l *ledgerImpl) Upcoming(ctx context.Context, days int) (res []model.Consultation, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Upcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	if days <= 0 {
		days = l.cfg.App.Booking.UpcomingDays
	}

	if days <= 0 {
		days = defaultUpcomingDays
	}

	now := l.now()

	res, err = l.repo.Upcoming(ctx, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming bookings: %w", err)
	}

	return res, nil
}

func (l *ledgerImpl) Stats(ctx context.Context) (res model.Stats, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = l.repo.Stats(ctx, l.now())
	if err != nil {
		return res, fmt.Errorf("failed to get booking stats: %w", err)
	}

	return res, nil
}

func (l *ledgerImpl) ensureAvailable(ctx context.Context, date time.Time, clock datetime.ClockTime) error {
	ok, err := l.resolver.IsSlotAvailable(ctx, date, clock)
	if err != nil {
		return fmt.Errorf("failed to check slot availability: %w", err)
	}

	if !ok {
		return model.ErrSlotTaken
	}

	return nil
}

// withSlotLock runs fn while holding the slot lock. The unique index stays the real guard, so a lock
// outage only logs.
func (l *ledgerImpl) withSlotLock(ctx context.Context, date time.Time, clock datetime.ClockTime, fn func() error) error {
	key := shared.BuildCacheKey(lockPrefix, datetime.FormatDate(date), clock.String())

	token, ok, err := l.locker.Lock(ctx, key, l.lockTTL())
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("slot lock unavailable, relying on the store constraint")

		return fn()
	}

	if !ok {
		return model.ErrSlotTaken
	}

	defer func() {
		if err := l.locker.Unlock(ctx, key, token); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to release slot lock")
		}
	}()

	return fn()
}

func (l *ledgerImpl) lockTTL() time.Duration {
	seconds := l.cfg.App.Booking.SlotLockSeconds
	if seconds <= 0 {
		seconds = defaultSlotLockSeconds
	}

	return time.Duration(seconds) * time.Second
}

func (l *ledgerImpl) touch(ctx context.Context, booking *model.Consultation, now time.Time) {
	booking.Touch(actor(ctx), now)
}

func actor(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != "" {
		return user
	}

	return constant.ContextGuest
}

func ptr(value string) *string {
	return &value
}
