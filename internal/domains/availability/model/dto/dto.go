package dto

import "agency/internal/domains/availability/model"

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func (r *SlotsResponse) FromModels(date string, models []model.Slot) {
	r.Date = date
	r.Slots = make([]SlotResponse, len(models))

	for i, mod := range models {
		r.Slots[i] = SlotResponse{Time: mod.Display, Available: mod.Available}
	}
}

// AvailableTimes lists the display labels that can still be booked.
func (r *SlotsResponse) AvailableTimes() []string {
	times := []string{}

	for _, slot := range r.Slots {
		if slot.Available {
			times = append(times, slot.Time)
		}
	}

	return times
}
