package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	"agency/internal/domains/availability/model"
	"agency/internal/domains/availability/model/dto"
	slotService "agency/internal/domains/slot/service"
	"agency/shared"
	"agency/shared/cache"
	"agency/shared/constant"
	"agency/shared/datetime"
	"agency/shared/failure"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultCacheSeconds = 300

// BookingReader exposes the bookings that hold a slot on a date.
type BookingReader interface {
	// ActiveTimesOn returns the requested_time labels of non-cancelled bookings on date.
	ActiveTimesOn(ctx context.Context, date time.Time) ([]string, error)
}

type Resolver interface {
	AvailableSlots(ctx context.Context, date time.Time) ([]model.Slot, error)
	IsSlotAvailable(ctx context.Context, date time.Time, clock datetime.ClockTime) (bool, error)
	Lookup(ctx context.Context, date string) (dto.SlotsResponse, error)
	Invalidate(ctx context.Context, date time.Time)
}

type serviceImpl struct {
	catalog  slotService.Catalog
	bookings BookingReader
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
}

func New(catalog slotService.Catalog, bookings BookingReader, cfg *config.Config, redisCache cache.RedisCache, otel otel.Otel) Resolver {
	return &serviceImpl{
		catalog:  catalog,
		bookings: bookings,
		cache:    redisCache,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) AvailableSlots(ctx context.Context, date time.Time) (res []model.Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	slots, err := s.catalog.SlotsForDayOfWeek(ctx, date.Weekday())
	if err != nil {
		return nil, fmt.Errorf("failed to get slots for day: %w", err)
	}

	if len(slots) == 0 {
		return []model.Slot{}, nil
	}

	blocked, err := s.catalog.BlockedWindowsForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get blocked windows: %w", err)
	}

	taken, err := s.bookings.ActiveTimesOn(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", datetime.FormatDate(date)).Msg("failed to get booked times")

		return nil, fmt.Errorf("failed to get booked times: %w", err)
	}

	res = make([]model.Slot, 0, len(slots))

	for _, slot := range slots {
		start, err := slot.Start()
		if err != nil {
			log.Warn().Err(err).Str("slot", slot.ID).Msg("skipping slot with unreadable start time")

			continue
		}

		available := !slices.Contains(taken, start.Display())

		for _, window := range blocked {
			if window.Blocks(start) {
				available = false

				break
			}
		}

		res = append(res, model.Slot{Start: start, Display: start.Display(), Available: available})
	}

	slices.SortStableFunc(res, func(a, b model.Slot) int {
		return int(a.Start) - int(b.Start)
	})

	return res, nil
}

func (s *serviceImpl) IsSlotAvailable(ctx context.Context, date time.Time, clock datetime.ClockTime) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsSlotAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	slots, err := s.AvailableSlots(ctx, date)
	if err != nil {
		return false, err
	}

	for _, slot := range slots {
		if slot.Start == clock {
			return slot.Available, nil
		}
	}

	if !s.cfg.App.Booking.AllowOffSchedule {
		return false, nil
	}

	taken, err := s.bookings.ActiveTimesOn(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to get booked times: %w", err)
	}

	return !slices.Contains(taken, clock.Display()), nil
}

func (s *serviceImpl) Lookup(ctx context.Context, date string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := datetime.ParseDate(date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be a valid YYYY-MM-DD value") // nolint:wrapcheck
	}

	iso := datetime.FormatDate(day)

	// The generation is read before computing: an Invalidate that lands mid-computation moves
	// readers to a newer key and this fill is never served.
	gen, genErr := cache.Generation(ctx, s.cache, shared.AvailabilityGenerationKey(iso))
	if genErr != nil {
		log.Warn().Err(genErr).Str("date", iso).Msg("failed to read availability cache generation")
	}

	key := shared.AvailabilityKey(iso, gen)

	if genErr == nil {
		err = s.cache.Get(ctx, key, &res)
		if err == nil {
			return res, nil
		}

		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("failed to read availability cache")
		}
	}

	slots, err := s.AvailableSlots(ctx, day)
	if err != nil {
		log.Error().Err(err).Str("date", iso).Msg("failed to resolve availability")

		return res, fmt.Errorf("failed to resolve availability: %w", err)
	}

	res.FromModels(iso, slots)

	if genErr != nil {
		return res, nil
	}

	if cacheErr := s.cache.Save(ctx, key, res, s.cacheSeconds()); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", key).Msg("failed to save availability cache")
	}

	return res, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context, date time.Time) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Invalidate")
	defer scope.End()

	iso := datetime.FormatDate(date)

	err := cache.Retire(ctx, s.cache, shared.AvailabilityGenerationKey(iso), func(gen int64) string {
		return shared.AvailabilityKey(iso, gen)
	})
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("date", iso).Msg("failed to invalidate availability cache")
	}
}

func (s *serviceImpl) cacheSeconds() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return defaultCacheSeconds
}
