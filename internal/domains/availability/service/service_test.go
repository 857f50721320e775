package service_test

import (
	"agency/config"
	"agency/infras/otel/mocks"
	availabilityMocks "agency/internal/domains/availability/mocks"
	"agency/internal/domains/availability/model"
	"agency/internal/domains/availability/service"
	slotMocks "agency/internal/domains/slot/mocks"
	slotModel "agency/internal/domains/slot/model"
	"agency/shared/cache"
	cacheMocks "agency/shared/cache/mocks"
	"agency/shared/datetime"
	"agency/shared/failure"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func monday(t *testing.T) time.Time {
	t.Helper()

	day, err := datetime.ParseDate("2025-03-10")
	require.NoError(t, err)

	return day
}

func strPtr(s string) *string { return &s }

func availability(slots []model.Slot) map[string]bool {
	res := map[string]bool{}
	for _, slot := range slots {
		res[slot.Display] = slot.Available
	}

	return res
}

func TestResolver_AvailableSlots(t *testing.T) {
	tests := []struct {
		name    string
		blocked []slotModel.BlockedDate
		taken   []string
		want    map[string]bool
	}{
		{
			name: "defaults with nothing booked",
			want: map[string]bool{"9:00 AM": true, "10:00 AM": true, "11:00 AM": true, "2:00 PM": true, "3:00 PM": true, "4:00 PM": true},
		},
		{
			name:  "booked slot is unavailable",
			taken: []string{"9:00 AM"},
			want:  map[string]bool{"9:00 AM": false, "10:00 AM": true, "11:00 AM": true, "2:00 PM": true, "3:00 PM": true, "4:00 PM": true},
		},
		{
			name:    "all day block removes everything",
			blocked: []slotModel.BlockedDate{{AllDay: true}},
			want:    map[string]bool{"9:00 AM": false, "10:00 AM": false, "11:00 AM": false, "2:00 PM": false, "3:00 PM": false, "4:00 PM": false},
		},
		{
			name:    "timed block covers slots starting inside the window",
			blocked: []slotModel.BlockedDate{{StartTime: strPtr("10:00:00"), EndTime: strPtr("11:30:00")}},
			want:    map[string]bool{"9:00 AM": true, "10:00 AM": false, "11:00 AM": false, "2:00 PM": true, "3:00 PM": true, "4:00 PM": true},
		},
		{
			name:    "window end is exclusive",
			blocked: []slotModel.BlockedDate{{StartTime: strPtr("09:00"), EndTime: strPtr("10:00")}},
			want:    map[string]bool{"9:00 AM": false, "10:00 AM": true, "11:00 AM": true, "2:00 PM": true, "3:00 PM": true, "4:00 PM": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := slotMocks.NewMockCatalog(ctrl)
			bookings := availabilityMocks.NewMockBookingReader(ctrl)
			svc := service.New(catalog, bookings, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

			day := monday(t)

			catalog.EXPECT().SlotsForDayOfWeek(gomock.Any(), time.Monday).Return(slotModel.DefaultSlots(time.Monday), nil)
			catalog.EXPECT().BlockedWindowsForDate(gomock.Any(), day).Return(tt.blocked, nil)
			bookings.EXPECT().ActiveTimesOn(gomock.Any(), day).Return(tt.taken, nil)

			got, err := svc.AvailableSlots(context.Background(), day)

			require.NoError(t, err)
			require.Len(t, got, 6)
			assert.Equal(t, "9:00 AM", got[0].Display)
			assert.Equal(t, "4:00 PM", got[5].Display)
			assert.Equal(t, tt.want, availability(got))
		})
	}
}

func TestResolver_AvailableSlotsWeekend(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := slotMocks.NewMockCatalog(ctrl)
	svc := service.New(catalog, availabilityMocks.NewMockBookingReader(ctrl), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	day, err := datetime.ParseDate("2025-03-09")
	require.NoError(t, err)

	catalog.EXPECT().SlotsForDayOfWeek(gomock.Any(), time.Sunday).Return(slotModel.DefaultSlots(time.Sunday), nil)

	got, err := svc.AvailableSlots(context.Background(), day)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolver_AvailableSlotsStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := slotMocks.NewMockCatalog(ctrl)
	bookings := availabilityMocks.NewMockBookingReader(ctrl)
	svc := service.New(catalog, bookings, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	catalog.EXPECT().SlotsForDayOfWeek(gomock.Any(), gomock.Any()).Return(slotModel.DefaultSlots(time.Monday), nil)
	catalog.EXPECT().BlockedWindowsForDate(gomock.Any(), gomock.Any()).Return(nil, nil)
	bookings.EXPECT().ActiveTimesOn(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	_, err := svc.AvailableSlots(context.Background(), monday(t))

	assert.Error(t, err)
}

func TestResolver_IsSlotAvailable(t *testing.T) {
	tests := []struct {
		name       string
		clock      string
		offSched   bool
		taken      []string
		wantReads  int
		wantResult bool
	}{
		{name: "free slot", clock: "09:00", wantReads: 1, wantResult: true},
		{name: "display form matches the same slot", clock: "2:00 PM", wantReads: 1, wantResult: true},
		{name: "taken slot", clock: "9:00 AM", taken: []string{"9:00 AM"}, wantReads: 1, wantResult: false},
		{name: "off schedule rejected by default", clock: "12:30", wantReads: 1, wantResult: false},
		{name: "off schedule allowed when enabled", clock: "12:30", offSched: true, wantReads: 2, wantResult: true},
		{name: "off schedule still respects bookings", clock: "12:30", offSched: true, taken: []string{"12:30 PM"}, wantReads: 2, wantResult: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := slotMocks.NewMockCatalog(ctrl)
			bookings := availabilityMocks.NewMockBookingReader(ctrl)

			cfg := &config.Config{}
			cfg.App.Booking.AllowOffSchedule = tt.offSched

			svc := service.New(catalog, bookings, cfg, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

			catalog.EXPECT().SlotsForDayOfWeek(gomock.Any(), time.Monday).Return(slotModel.DefaultSlots(time.Monday), nil)
			catalog.EXPECT().BlockedWindowsForDate(gomock.Any(), gomock.Any()).Return(nil, nil)
			bookings.EXPECT().ActiveTimesOn(gomock.Any(), gomock.Any()).Return(tt.taken, nil).Times(tt.wantReads)

			ok, err := svc.IsSlotAvailable(context.Background(), monday(t), datetime.MustClock(tt.clock))

			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, ok)
		})
	}
}

func TestResolver_LookupUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	ctrl := gomock.NewController(t)
	catalog := slotMocks.NewMockCatalog(ctrl)
	bookings := availabilityMocks.NewMockBookingReader(ctrl)
	svc := service.New(catalog, bookings, &config.Config{}, redisCache, mocks.NewOtel())

	catalog.EXPECT().SlotsForDayOfWeek(gomock.Any(), time.Monday).Return(slotModel.DefaultSlots(time.Monday), nil).Times(2)
	catalog.EXPECT().BlockedWindowsForDate(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		bookings.EXPECT().ActiveTimesOn(gomock.Any(), gomock.Any()).Return(nil, nil),
		bookings.EXPECT().ActiveTimesOn(gomock.Any(), gomock.Any()).Return([]string{"9:00 AM"}, nil),
	)

	first, err := svc.Lookup(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", first.Date)
	assert.Len(t, first.AvailableTimes(), 6)
	assert.True(t, mr.Exists("availability:2025-03-10:0"))

	cached, err := svc.Lookup(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	svc.Invalidate(context.Background(), monday(t))
	assert.Equal(t, "1", mustGet(t, mr, "availability-generation:2025-03-10"))

	refreshed, err := svc.Lookup(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.False(t, refreshed.Slots[0].Available)
	assert.Len(t, refreshed.AvailableTimes(), 5)
	assert.True(t, mr.Exists("availability:2025-03-10:1"))
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()

	value, err := mr.Get(key)
	require.NoError(t, err)

	return value
}

func TestResolver_LookupDropsFillRacingABooking(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	ctrl := gomock.NewController(t)
	catalog := slotMocks.NewMockCatalog(ctrl)
	bookings := availabilityMocks.NewMockBookingReader(ctrl)
	svc := service.New(catalog, bookings, &config.Config{}, redisCache, mocks.NewOtel())

	catalog.EXPECT().SlotsForDayOfWeek(gomock.Any(), time.Monday).Return(slotModel.DefaultSlots(time.Monday), nil).Times(2)
	catalog.EXPECT().BlockedWindowsForDate(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		// A booking commits and invalidates the date after the first read saw no bookings.
		bookings.EXPECT().ActiveTimesOn(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, date time.Time) ([]string, error) {
				svc.Invalidate(ctx, date)

				return nil, nil
			}),
		bookings.EXPECT().ActiveTimesOn(gomock.Any(), gomock.Any()).Return([]string{"9:00 AM"}, nil),
	)

	stale, err := svc.Lookup(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.True(t, stale.Slots[0].Available)

	fresh, err := svc.Lookup(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", fresh.Slots[0].Time)
	assert.False(t, fresh.Slots[0].Available)
}

func TestResolver_LookupWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := slotMocks.NewMockCatalog(ctrl)
	bookings := availabilityMocks.NewMockBookingReader(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(catalog, bookings, &config.Config{}, redisCache, mocks.NewOtel())

	redisCache.EXPECT().Get(gomock.Any(), "availability-generation:2025-03-10", gomock.Any()).Return(errors.New("connection refused"))
	catalog.EXPECT().SlotsForDayOfWeek(gomock.Any(), time.Monday).Return(slotModel.DefaultSlots(time.Monday), nil)
	catalog.EXPECT().BlockedWindowsForDate(gomock.Any(), gomock.Any()).Return(nil, nil)
	bookings.EXPECT().ActiveTimesOn(gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.Lookup(context.Background(), "2025-03-10")

	require.NoError(t, err)
	assert.Len(t, res.AvailableTimes(), 6)
}

func TestResolver_LookupRejectsBadDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(slotMocks.NewMockCatalog(ctrl), availabilityMocks.NewMockBookingReader(ctrl), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	for _, date := range []string{"", "tomorrow", "2025-13-01", "10/03/2025"} {
		_, err := svc.Lookup(context.Background(), date)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err), date)
	}
}
