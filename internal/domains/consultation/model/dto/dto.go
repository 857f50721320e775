package dto

import (
	"agency/internal/domains/consultation/model"
	"agency/shared/datetime"
	gDto "agency/shared/dto"
	gModel "agency/shared/model"
	"agency/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// MeetingPendingURL is shown when the meeting could not be provisioned during booking.
const MeetingPendingURL = "Will be sent separately"

type BookRequest struct {
	Name             string `json:"name"             validate:"required,min=2,max=100"`
	Email            string `json:"email"            validate:"required,email,max=100"`
	Phone            string `json:"phone"            validate:"required,min=10,max=30"`
	Company          string `json:"company"          validate:"omitempty,max=100"`
	PreferredDate    string `json:"preferredDate"    validate:"required,isodate"`
	PreferredTime    string `json:"preferredTime"    validate:"required,clocktime"`
	ConsultationType string `json:"consultationType" validate:"required,oneof=video phone in-person"`
	ProjectDetails   string `json:"projectDetails"   validate:"required,min=20,max=5000"`
	Budget           string `json:"budget"           validate:"omitempty,max=100"`
	Timeline         string `json:"timeline"         validate:"omitempty,max=100"`
}

// ToModel builds an unsaved booking for the normalized slot. The ledger assigns the booking id and status.
func (r *BookRequest) ToModel(user string, date time.Time, clock datetime.ClockTime) model.Consultation {
	now := timezone.Now()

	return model.Consultation{
		ID:               uuid.NewString(),
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Company:          optional(r.Company),
		RequestedDate:    date,
		RequestedTime:    clock.Display(),
		ScheduledAt:      clock.On(date),
		ConsultationType: r.ConsultationType,
		ProjectDetails:   r.ProjectDetails,
		Budget:           optional(r.Budget),
		Timeline:         optional(r.Timeline),
		Metadata:         gModel.NewMetadata(user, now),
	}
}

type MeetingDetails struct {
	URL      string `json:"url"`
	Password string `json:"password,omitempty"`
}

type BookResponse struct {
	BookingID      string          `json:"bookingId"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Type           string          `json:"type"`
	MeetingDetails *MeetingDetails `json:"meetingDetails,omitempty"`
}

// FromModel fills the response. ref is nil when provisioning failed or the booking is not a video call.
func (r *BookResponse) FromModel(mod model.Consultation, ref *model.MeetingRef) {
	r.BookingID = mod.BookingID
	r.Date = datetime.FormatLongDate(mod.Date())
	r.Time = mod.RequestedTime
	r.Type = mod.ConsultationType

	if !mod.IsVideo() {
		return
	}

	if ref == nil {
		r.MeetingDetails = &MeetingDetails{URL: MeetingPendingURL}

		return
	}

	r.MeetingDetails = &MeetingDetails{URL: ref.URL, Password: ref.Password}
}

type RescheduleRequest struct {
	NewDate string `json:"newDate" validate:"required,isodate"`
	NewTime string `json:"newTime" validate:"required,clocktime"`
}

type RescheduleResponse struct {
	BookingID string `json:"bookingId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

func (r *RescheduleResponse) FromModel(mod model.Consultation) {
	r.BookingID = mod.BookingID
	r.Date = datetime.FormatLongDate(mod.Date())
	r.Time = mod.RequestedTime
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled no_show"`
	Notes  string `json:"notes"  validate:"omitempty,max=1000"`
}

type ConsultationResponse struct {
	ID               string  `json:"id"`
	BookingID        string  `json:"bookingId"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Company          *string `json:"company,omitempty"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	ScheduledAt      string  `json:"scheduledAt"`
	ConsultationType string  `json:"consultationType"`
	ProjectDetails   string  `json:"projectDetails"`
	Budget           *string `json:"budget,omitempty"`
	Timeline         *string `json:"timeline,omitempty"`
	Status           string  `json:"status"`
	MeetingURL       *string `json:"meetingUrl,omitempty"`
	MeetingID        *string `json:"meetingId,omitempty"`
	MeetingHostURL   *string `json:"meetingHostUrl,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *ConsultationResponse) FromModel(mod model.Consultation) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Company = mod.Company
	r.Date = datetime.FormatDate(mod.Date())
	r.Time = mod.RequestedTime
	r.ScheduledAt = timezone.Format(mod.ScheduledAt, time.RFC3339)
	r.ConsultationType = mod.ConsultationType
	r.ProjectDetails = mod.ProjectDetails
	r.Budget = mod.Budget
	r.Timeline = mod.Timeline
	r.Status = mod.Status
	r.MeetingURL = mod.MeetingURL
	r.MeetingID = mod.MeetingID
	r.MeetingHostURL = mod.MeetingHostURL
	r.Notes = mod.Notes
	r.Metadata = gDto.MetadataFrom(mod.Metadata)
}

func FromModels(models []model.Consultation) []ConsultationResponse {
	res := make([]ConsultationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type StatsResponse struct {
	TotalConsultations     int `json:"totalConsultations"`
	UpcomingConsultations  int `json:"upcomingConsultations"`
	CompletedConsultations int `json:"completedConsultations"`
	CancelledConsultations int `json:"cancelledConsultations"`
}

func (r *StatsResponse) FromModel(stats model.Stats) {
	r.TotalConsultations = stats.Total
	r.UpcomingConsultations = stats.Upcoming
	r.CompletedConsultations = stats.Completed
	r.CancelledConsultations = stats.Cancelled
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
