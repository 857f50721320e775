package model

import "agency/shared/datetime"

// Slot is one schedule window on a concrete date.
type Slot struct {
	Start     datetime.ClockTime
	Display   string
	Available bool
}
