package service

import (
	"agency/config"
	"agency/infras/s3"
	"agency/infras/zoom"
	"agency/internal/domains/consultation/model"
	"agency/shared/constant"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

const (
	inviteDirectory = "invites"
	inviteExtension = ".ics"
	icsStampLayout  = "20060102T150405Z"
	icsLineBreak    = "\r\n"
	icsFoldWidth    = 75
	defaultUIDHost  = "consultations.local"
)

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)

// invites publishes an iCalendar file per booking to object storage.
type invites struct {
	store    s3.S3
	company  company
	duration time.Duration
	uidHost  string
}

func newInvites(store s3.S3, cfg *config.Config) *invites {
	minutes := cfg.App.Booking.MeetingDurationMinutes
	if minutes <= 0 {
		minutes = zoom.DefaultDurationMinutes
	}

	host := defaultUIDHost
	if parsed, err := url.Parse(cfg.App.Company.SiteURL); err == nil && parsed.Hostname() != "" {
		host = parsed.Hostname()
	}

	return &invites{
		store: store,
		company: company{
			Name:    cfg.App.Company.Name,
			Email:   cfg.App.Company.Email,
			Phone:   cfg.App.Company.Phone,
			SiteURL: cfg.App.Company.SiteURL,
		},
		duration: time.Duration(minutes) * time.Minute,
		uidHost:  host,
	}
}

// Publish uploads the invite for booking and returns its public URL. It returns "" when storage is
// disabled or the upload fails.
func (i *invites) Publish(ctx context.Context, booking model.Consultation, sequence int) string {
	if !i.store.Enabled() {
		return ""
	}

	body := i.build(booking, sequence, time.Now().UTC())

	link, err := i.store.UploadFileBytes(ctx, inviteDirectory, booking.BookingID+inviteExtension, constant.ContentTypeCalendar, body)
	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("failed to upload calendar invite")

		return ""
	}

	return link
}

func (i *invites) Remove(ctx context.Context, bookingID string) {
	if !i.store.Enabled() {
		return
	}

	if err := i.store.DeleteFile(ctx, inviteDirectory, bookingID+inviteExtension); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to delete calendar invite")
	}
}

func (i *invites) build(booking model.Consultation, sequence int, stamp time.Time) []byte {
	start := booking.ScheduledAt.UTC()
	status := "CONFIRMED"
	method := "REQUEST"

	if booking.Status == model.StatusCancelled {
		status = "CANCELLED"
		method = "CANCEL"
	}

	description := fmt.Sprintf("Booking ID: %s\nType: %s", booking.BookingID, booking.ConsultationType)

	location := i.company.Phone
	if ref := booking.Meeting(); ref != nil && ref.URL != "" {
		location = ref.URL
		description += "\nJoin: " + ref.URL

		if ref.Password != "" {
			description += "\nPassword: " + ref.Password
		}
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//" + escapeText(i.company.Name) + "//Consultations//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:" + method,
		"BEGIN:VEVENT",
		"UID:" + booking.BookingID + "@" + i.uidHost,
		"SEQUENCE:" + strconv.Itoa(sequence),
		"DTSTAMP:" + stamp.Format(icsStampLayout),
		"DTSTART:" + start.Format(icsStampLayout),
		"DTEND:" + start.Add(i.duration).Format(icsStampLayout),
		"SUMMARY:" + escapeText("Consultation with "+i.company.Name),
		"DESCRIPTION:" + escapeText(description),
		"STATUS:" + status,
		"ORGANIZER;CN=" + quoteParam(i.company.Name) + ":mailto:" + i.company.Email,
		"ATTENDEE;CN=" + quoteParam(booking.Name) + ";ROLE=REQ-PARTICIPANT;RSVP=TRUE:mailto:" + booking.Email,
	}

	if location != "" {
		lines = append(lines, "LOCATION:"+escapeText(location))
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(fold(line))
		b.WriteString(icsLineBreak)
	}

	return []byte(b.String())
}

func escapeText(value string) string {
	return icsEscaper.Replace(value)
}

func quoteParam(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, "'") + `"`
}

// fold splits content lines longer than 75 octets, continuing with a leading space.
func fold(line string) string {
	if len(line) <= icsFoldWidth {
		return line
	}

	var b strings.Builder

	width := icsFoldWidth
	for len(line) > width {
		cut := width
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}

		b.WriteString(line[:cut])
		b.WriteString(icsLineBreak + " ")
		line = line[cut:]
		width = icsFoldWidth - 1
	}

	b.WriteString(line)

	return b.String()
}
