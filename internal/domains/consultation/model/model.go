package model

import (
	"agency/shared/datetime"
	"agency/shared/model"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	TableName  = "consultations"
	EntityName = "consultation"

	FieldID               = "id"
	FieldBookingID        = "booking_id"
	FieldRequestedDate    = "requested_date"
	FieldRequestedTime    = "requested_time"
	FieldScheduledAt      = "scheduled_at"
	FieldConsultationType = "consultation_type"
	FieldStatus           = "status"
	FieldMeetingURL       = "meeting_url"
	FieldMeetingID        = "meeting_id"
	FieldMeetingPassword  = "meeting_password"
	FieldMeetingHostURL   = "meeting_host_url"
	FieldNotes            = "notes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

const (
	TypeVideo    = "video"
	TypePhone    = "phone"
	TypeInPerson = "in-person"
)

const (
	bookingIDPrefix       = "BOOK"
	bookingIDSuffixLength = 5
	base36                = 36
)

var (
	ErrNotFound          = errors.New("consultation not found")
	ErrSlotTaken         = errors.New("time slot is no longer available")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

var meetingBreadcrumb = regexp.MustCompile(`Zoom Meeting ID: (\d+)`)

type Consultation struct {
	ID               string    `db:"id"`
	BookingID        string    `db:"booking_id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	Phone            string    `db:"phone"`
	Company          *string   `db:"company"`
	RequestedDate    time.Time `db:"requested_date"`
	RequestedTime    string    `db:"requested_time"`
	ScheduledAt      time.Time `db:"scheduled_at"`
	ConsultationType string    `db:"consultation_type"`
	ProjectDetails   string    `db:"project_details"`
	Budget           *string   `db:"budget"`
	Timeline         *string   `db:"timeline"`
	Status           string    `db:"status"`
	MeetingURL       *string   `db:"meeting_url"`
	MeetingID        *string   `db:"meeting_id"`
	MeetingPassword  *string   `db:"meeting_password"`
	MeetingHostURL   *string   `db:"meeting_host_url"`
	Notes            *string   `db:"notes"`
	model.Metadata
}

// MeetingRef points at the video meeting provisioned for a booking.
type MeetingRef struct {
	URL      string
	ID       string
	Password string
	HostURL  string
}

// Stats summarizes the ledger for the admin dashboard.
type Stats struct {
	Total     int
	Upcoming  int
	Completed int
	Cancelled int
}

// CanTransition reports whether from -> to is an edge of the status machine.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// IsReschedulable reports whether a booking in status may move to another slot.
func IsReschedulable(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}

// Date is the requested calendar day in the application timezone.
func (c Consultation) Date() time.Time {
	return datetime.CalendarDay(c.RequestedDate)
}

func (c Consultation) IsVideo() bool {
	return c.ConsultationType == TypeVideo
}

// Meeting returns the stored meeting reference, or nil when none was attached.
func (c Consultation) Meeting() *MeetingRef {
	if c.MeetingURL == nil && c.MeetingID == nil {
		return nil
	}

	return &MeetingRef{
		URL:      deref(c.MeetingURL),
		ID:       deref(c.MeetingID),
		Password: deref(c.MeetingPassword),
		HostURL:  deref(c.MeetingHostURL),
	}
}

// ExtractMeetingID finds the provider meeting id in the column or, for older rows, in the notes breadcrumb.
func (c Consultation) ExtractMeetingID() string {
	if id := deref(c.MeetingID); id != "" {
		return id
	}

	match := meetingBreadcrumb.FindStringSubmatch(deref(c.Notes))
	if len(match) < 2 {
		return ""
	}

	return match[1]
}

// AppendNote adds line to the audit trail in notes.
func (c Consultation) AppendNote(line string) string {
	notes := deref(c.Notes)
	if notes == "" {
		return line
	}

	return notes + "\n" + line
}

func MeetingNote(ref MeetingRef) string {
	return fmt.Sprintf("Zoom Meeting ID: %s, Password: %s", ref.ID, ref.Password)
}

func StatusNote(from, to string, at time.Time, notes string) string {
	line := fmt.Sprintf("Status changed from %s to %s at %s", from, to, at.Format(time.RFC3339))
	if notes != "" {
		line += ": " + notes
	}

	return line
}

func RescheduleNote(date time.Time, label string, at time.Time) string {
	return fmt.Sprintf("Rescheduled from %s %s at %s", datetime.FormatDate(date), label, at.Format(time.RFC3339))
}

// GenerateBookingID builds a human readable id such as BOOK-M7X2K1QZ-4F9TA.
func GenerateBookingID(now time.Time) (string, error) {
	suffix := make([]byte, bookingIDSuffixLength)

	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(base36))
		if err != nil {
			return "", fmt.Errorf("failed to generate booking id: %w", err)
		}

		suffix[i] = strconv.FormatInt(n.Int64(), base36)[0]
	}

	id := fmt.Sprintf("%s-%s-%s", bookingIDPrefix, strconv.FormatInt(now.UnixMilli(), base36), suffix)

	return strings.ToUpper(id), nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
