package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	"agency/internal/domains/slot/model"
	"agency/internal/domains/slot/model/dto"
	"agency/internal/domains/slot/repository"
	"agency/shared"
	"agency/shared/cache"
	"agency/shared/constant"
	"agency/shared/datetime"
	gDto "agency/shared/dto"
	"agency/shared/failure"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	goCache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	defaultCatalogCacheSeconds = 300
	catalogCleanupInterval     = 10 * time.Minute
)

// Catalog owns the weekly schedule and the blocked date exceptions.
type Catalog interface {
	SlotsForDayOfWeek(ctx context.Context, day time.Weekday) ([]model.TimeSlot, error)
	BlockedWindowsForDate(ctx context.Context, date time.Time) ([]model.BlockedDate, error)

	ListSlots(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSlotsResponse, error)
	CreateSlot(ctx context.Context, req dto.CreateSlotRequest) (dto.SlotResponse, error)
	SetSlotActive(ctx context.Context, id string, req dto.UpdateSlotRequest) error
	SeedDefaults(ctx context.Context) (dto.SeedDefaultsResponse, error)
	BlockDate(ctx context.Context, req dto.BlockDateRequest) (dto.BlockedDateResponse, error)
	ListBlockedDates(ctx context.Context, from, to string) ([]dto.BlockedDateResponse, error)
	UnblockDate(ctx context.Context, id string) error
}

type serviceImpl struct {
	slots   repository.TimeSlot
	blocked repository.BlockedDate
	cache   cache.RedisCache
	local   *goCache.Cache
	cfg     *config.Config
	otel    otel.Otel
}

func New(slots repository.TimeSlot, blocked repository.BlockedDate, cfg *config.Config, redisCache cache.RedisCache, otel otel.Otel) Catalog {
	ttl := cfg.App.Booking.CatalogCacheSeconds
	if ttl <= 0 {
		ttl = defaultCatalogCacheSeconds
	}

	return &serviceImpl{
		slots:   slots,
		blocked: blocked,
		cache:   redisCache,
		local:   goCache.New(time.Duration(ttl)*time.Second, catalogCleanupInterval),
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) SlotsForDayOfWeek(ctx context.Context, day time.Weekday) (res []model.TimeSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SlotsForDayOfWeek")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(constant.CacheKeyWeekday, strconv.Itoa(int(day)))
	if cached, ok := s.local.Get(key); ok {
		if slots, ok := cached.([]model.TimeSlot); ok {
			return slots, nil
		}
	}

	rows, err := s.slots.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldDayOfWeek, Value: int(day), Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Int("day", int(day)).Msg("failed to get time slots")

		return nil, fmt.Errorf("failed to get time slots: %w", err)
	}

	if len(rows) == 0 {
		res = model.DefaultSlots(day)
	} else {
		res = activeSlots(rows)
	}

	s.local.SetDefault(key, res)

	return res, nil
}

func (s *serviceImpl) BlockedWindowsForDate(ctx context.Context, date time.Time) (res []model.BlockedDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BlockedWindowsForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.blocked.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldDate, Value: datetime.FormatDate(date), Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked dates")

		return nil, fmt.Errorf("failed to get blocked dates: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ListSlots(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.slots.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count time slots")

		return res, fmt.Errorf("failed to count time slots: %w", err)
	}

	if params.SortBy == "" {
		params.SortBy = model.FieldDayOfWeek + ", " + model.FieldStartTime
		params.SortDir = gDto.SortDirAsc
	}

	models, err := s.slots.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get time slots")

		return res, fmt.Errorf("failed to get time slots: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) CreateSlot(ctx context.Context, req dto.CreateSlotRequest) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slot, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	exist, err := s.slots.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldDayOfWeek, Value: slot.DayOfWeek, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStartTime, Value: slot.StartTime, Operator: gDto.FilterOperatorEq},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if time slot exists")

		return res, fmt.Errorf("failed to check if time slot exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("a slot already starts at that time on that day") // nolint:wrapcheck
	}

	inserted, err := s.slots.InsertOnConflictDoNothing(ctx, slot)
	if err != nil {
		log.Error().Err(err).Msg("failed to create time slot")

		return res, fmt.Errorf("failed to create time slot: %w", err)
	}

	if !inserted {
		return res, failure.Conflict("a slot already starts at that time on that day") // nolint:wrapcheck
	}

	s.scheduleChanged(ctx)
	res.FromModel(slot)

	return res, nil
}

func (s *serviceImpl) SetSlotActive(ctx context.Context, id string, req dto.UpdateSlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetSlotActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	affected, err := s.slots.UpdateAffected(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update time slot")

		return fmt.Errorf("failed to update time slot: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("time slot not found") // nolint:wrapcheck
	}

	s.scheduleChanged(ctx)

	return nil
}

func (s *serviceImpl) SeedDefaults(ctx context.Context) (res dto.SeedDefaultsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SeedDefaults")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	for day := time.Monday; day <= time.Friday; day++ {
		for _, slot := range model.DefaultSlots(day) {
			req := dto.CreateSlotRequest{DayOfWeek: &slot.DayOfWeek, StartTime: slot.StartTime, EndTime: slot.EndTime}

			row, err := req.ToModel(user)
			if err != nil {
				return res, fmt.Errorf("failed to build default slot: %w", err)
			}

			inserted, err := s.slots.InsertOnConflictDoNothing(ctx, row)
			if err != nil {
				log.Error().Err(err).Msg("failed to seed default time slot")

				return res, fmt.Errorf("failed to seed default time slot: %w", err)
			}

			if inserted {
				res.Inserted++
			}
		}
	}

	s.scheduleChanged(ctx)

	log.Info().Int("inserted", res.Inserted).Msg("default time slots seeded")

	return res, nil
}

func (s *serviceImpl) BlockDate(ctx context.Context, req dto.BlockDateRequest) (res dto.BlockedDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BlockDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	blocked, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.blocked.Insert(ctx, blocked); err != nil {
		log.Error().Err(err).Msg("failed to block date")

		return res, fmt.Errorf("failed to block date: %w", err)
	}

	s.dateChanged(ctx, blocked.Date)
	res.FromModel(blocked)

	return res, nil
}

func (s *serviceImpl) ListBlockedDates(ctx context.Context, from, to string) (res []dto.BlockedDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBlockedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if from != constant.Empty {
		day, err := datetime.ParseDate(from)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		filter.Filters = append(filter.Filters, gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: datetime.FormatDate(day), Operator: gDto.FilterOperatorGreaterEq})
	}

	if to != constant.Empty {
		day, err := datetime.ParseDate(to)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		filter.Filters = append(filter.Filters, gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: datetime.FormatDate(day), Operator: gDto.FilterOperatorLessEq})
	}

	models, err := s.blocked.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked dates")

		return nil, fmt.Errorf("failed to get blocked dates: %w", err)
	}

	return dto.FromBlockedDates(models), nil
}

func (s *serviceImpl) UnblockDate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnblockDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.blocked.DeleteAffected(ctx, shared.FilterByID(id, model.FieldBlockedDateID, model.BlockedDateTableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to unblock date")

		return fmt.Errorf("failed to unblock date: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("blocked date not found") // nolint:wrapcheck
	}

	// The row is gone, so the exact date is unknown here.
	s.scheduleChanged(ctx)

	return nil
}

// scheduleChanged drops every derived view of the schedule.
func (s *serviceImpl) scheduleChanged(ctx context.Context) {
	s.local.Flush()

	err := s.cache.Clear(ctx, shared.BuildCacheKey(constant.CacheKeyAvailability, constant.Asterix))
	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("failed to clear availability cache")
	}
}

func (s *serviceImpl) dateChanged(ctx context.Context, date time.Time) {
	iso := datetime.FormatDate(date)

	err := cache.Retire(ctx, s.cache, shared.AvailabilityGenerationKey(iso), func(gen int64) string {
		return shared.AvailabilityKey(iso, gen)
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to invalidate availability cache")
	}
}

func activeSlots(rows []model.TimeSlot) []model.TimeSlot {
	res := make([]model.TimeSlot, 0, len(rows))

	for _, row := range rows {
		if row.IsActive {
			res = append(res, row)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		a, errA := res[i].Start()
		b, errB := res[j].Start()

		if errA != nil || errB != nil {
			return res[i].StartTime < res[j].StartTime
		}

		return a < b
	})

	return res
}
