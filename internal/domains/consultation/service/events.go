package service

import (
	"agency/infras/kafka"
	"agency/internal/domains/consultation/model"
	"agency/shared/datetime"
	"agency/shared/timezone"
	"context"
	"time"
)

const (
	EventBooked        = "consultation.booked"
	EventCancelled     = "consultation.cancelled"
	EventRescheduled   = "consultation.rescheduled"
	EventStatusChanged = "consultation.status_changed"
)

// Event is the payload published for every lifecycle change of a booking.
type Event struct {
	Name             string    `json:"event"`
	BookingID        string    `json:"bookingId"`
	Status           string    `json:"status"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	ConsultationType string    `json:"consultationType"`
	PreviousDate     string    `json:"previousDate,omitempty"`
	PreviousTime     string    `json:"previousTime,omitempty"`
	OccurredAt       time.Time `json:"occurredAt"`
}

func newEvent(name string, booking model.Consultation) Event {
	return Event{
		Name:             name,
		BookingID:        booking.BookingID,
		Status:           booking.Status,
		Date:             datetime.FormatDate(booking.Date()),
		Time:             booking.RequestedTime,
		ScheduledAt:      booking.ScheduledAt,
		ConsultationType: booking.ConsultationType,
		OccurredAt:       timezone.Now(),
	}
}

// publish sends event in the background. Events are keyed by booking id so one booking stays ordered.
func (s *serviceImpl) publish(ctx context.Context, event Event) {
	s.runner.Go(ctx, event.Name, func(ctx context.Context) error {
		return s.events.SendMessages(ctx, "", kafka.Message{
			Key:   event.BookingID,
			Event: event.Name,
			Value: event,
		})
	})
}
