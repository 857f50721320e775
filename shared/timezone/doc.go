// Package timezone keeps every calendar computation in one location.
//
// Booking dates are calendar days of the business, not of the caller, so slot lookups,
// booking timestamps and blocked dates are all resolved here:
//
//	now := timezone.Now()
//	day := timezone.StartOfDay(now)
//	t, err := timezone.Parse("2006-01-02", "2025-03-10")
//
// The location comes from APP_TIMEZONE (an IANA name such as "America/New_York") and is
// loaded on first use. UTC is used when it is missing or invalid.
package timezone
