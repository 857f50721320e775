package model

import (
	"agency/shared/datetime"
	"agency/shared/model"
	"time"
)

const (
	TableName  = "time_slots"
	EntityName = "time_slot"

	FieldID        = "id"
	FieldDayOfWeek = "day_of_week"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldIsActive  = "is_active"
)

const (
	BlockedDateTableName  = "blocked_dates"
	BlockedDateEntityName = "blocked_date"

	FieldBlockedDateID = "id"
	FieldDate          = "date"
	FieldReason        = "reason"
	FieldAllDay        = "all_day"
)

const defaultSlotMinutes = 60

// defaultWindows are the weekday start times used until the schedule is seeded.
var defaultWindows = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

type TimeSlot struct {
	ID        string `db:"id"`
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	IsActive  bool   `db:"is_active"`
	model.Metadata
}

// Start parses the stored start time, which the database may return as "15:04:05".
func (t TimeSlot) Start() (datetime.ClockTime, error) {
	return datetime.ParseClock(t.StartTime)
}

type BlockedDate struct {
	ID        string    `db:"id"`
	Date      time.Time `db:"date"`
	Reason    *string   `db:"reason"`
	AllDay    bool      `db:"all_day"`
	StartTime *string   `db:"start_time"`
	EndTime   *string   `db:"end_time"`
	model.Metadata
}

// Blocks reports whether a slot starting at start is removed by this entry.
// Timed entries cover [StartTime, EndTime).
func (b BlockedDate) Blocks(start datetime.ClockTime) bool {
	if b.AllDay {
		return true
	}

	if b.StartTime == nil || b.EndTime == nil {
		return false
	}

	from, err := datetime.ParseClock(*b.StartTime)
	if err != nil {
		return false
	}

	to, err := datetime.ParseClock(*b.EndTime)
	if err != nil {
		return false
	}

	return start >= from && start < to
}

// DefaultSlots returns the hard-coded schedule for a weekday with no rows at all.
// Weekends have no default slots.
func DefaultSlots(day time.Weekday) []TimeSlot {
	if day == time.Saturday || day == time.Sunday {
		return []TimeSlot{}
	}

	slots := make([]TimeSlot, 0, len(defaultWindows))

	for _, window := range defaultWindows {
		start := datetime.MustClock(window)
		slots = append(slots, TimeSlot{
			DayOfWeek: int(day),
			StartTime: start.String(),
			EndTime:   (start + defaultSlotMinutes).String(),
			IsActive:  true,
		})
	}

	return slots
}
