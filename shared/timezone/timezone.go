package timezone

import (
	"agency/config"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	location atomic.Pointer[time.Location]
	loadOnce sync.Once
)

// Load resolves an IANA zone name. An empty or unknown name yields UTC together with the reason.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, err //nolint:wrapcheck
	}

	return loc, nil
}

// SetLocation overrides the business location, e.g. in tests.
func SetLocation(loc *time.Location) {
	loadOnce.Do(func() {})
	location.Store(loc)
}

// GetLocation returns the business location, loading APP_TIMEZONE on first use.
func GetLocation() *time.Location {
	loadOnce.Do(func() {
		name := config.Get().App.Timezone

		loc, err := Load(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")
		}

		location.Store(loc)
		log.Info().Str("location", loc.String()).Msg("Application timezone initialized")
	})

	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Parse reads value as a wall clock time in the business location.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}

// StartOfDay returns midnight of t's calendar day in the business location.
func StartOfDay(t time.Time) time.Time {
	local := t.In(GetLocation())

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
