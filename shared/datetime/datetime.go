// Package datetime is the single entry point for turning caller supplied dates and times
// into the values used by scheduling code. Anything it cannot normalize is rejected.
package datetime

import (
	"agency/shared/timezone"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DisplayLayout  = "3:04 PM"
	LongDateLayout = "January 2, 2006"

	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

var clockLayouts = []string{ClockLayout, "15:04:05", DisplayLayout, "3:04PM", "03:04 PM"}

// ClockTime is a wall clock time as minutes after midnight.
type ClockTime int

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns midnight of that
// calendar day in the application timezone.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	if day, err := timezone.Parse(DateLayout, value); err == nil {
		return day, nil
	}

	stamp, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return timezone.StartOfDay(stamp), nil
}

// ParseClock accepts "15:04", "15:04:05" or "3:04 PM" style values.
func ParseClock(value string) (ClockTime, error) {
	value = strings.ToUpper(strings.TrimSpace(value))

	for _, layout := range clockLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return ClockTime(parsed.Hour()*minutesPerHour + parsed.Minute()), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
}

// MustClock parses a trusted literal and panics on failure.
func MustClock(value string) ClockTime {
	clock, err := ParseClock(value)
	if err != nil {
		panic(err)
	}

	return clock
}

func (c ClockTime) Hour() int {
	return int(c) / minutesPerHour
}

func (c ClockTime) Minute() int {
	return int(c) % minutesPerHour
}

func (c ClockTime) Valid() bool {
	return c >= 0 && c < minutesPerDay
}

// String returns the 24 hour "15:04" form used for storage.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Display returns the 12 hour label shown to clients and stored on bookings, e.g. "9:00 AM".
func (c ClockTime) Display() string {
	return time.Date(0, 1, 1, c.Hour(), c.Minute(), 0, 0, time.UTC).Format(DisplayLayout)
}

// On combines the clock time with the calendar day of date in the application timezone.
func (c ClockTime) On(date time.Time) time.Time {
	day := timezone.StartOfDay(date)

	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, timezone.GetLocation())
}

// FormatDate renders the ISO calendar date.
func FormatDate(date time.Time) string {
	return timezone.Format(date, DateLayout)
}

// FormatLongDate renders dates the way they appear in emails, e.g. "March 10, 2025".
func FormatLongDate(date time.Time) string {
	return timezone.Format(date, LongDateLayout)
}

// CalendarDay reinterprets a DATE column value as that calendar day in the application timezone.
// The driver returns those at UTC midnight, so converting them would shift the day west of UTC.
func CalendarDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, timezone.GetLocation())
}
