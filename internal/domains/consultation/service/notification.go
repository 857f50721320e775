package service

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=../mocks/notification_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/email"
	"agency/infras/metrics"
	"agency/internal/domains/consultation/model"
	"agency/shared/datetime"
	"agency/shared/timezone"
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"golang.org/x/sync/errgroup"
)

const (
	notificationBooked      = "booked"
	notificationCancelled   = "cancelled"
	notificationRescheduled = "rescheduled"

	audienceOperator = "operator"
	audienceClient   = "client"

	notProvided  = "Not provided"
	notSpecified = "Not specified"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Notifier emails the operator and the client about booking lifecycle changes.
type Notifier interface {
	Booked(ctx context.Context, booking model.Consultation, ref *model.MeetingRef, inviteURL string) error
	Cancelled(ctx context.Context, booking model.Consultation) error
	Rescheduled(ctx context.Context, previous, current model.Consultation, inviteURL string) error
}

type company struct {
	Name    string
	Email   string
	Phone   string
	SiteURL string
}

type emailView struct {
	Company        company
	Audience       string
	Name           string
	Email          string
	Phone          string
	Organization   string
	Type           string
	Details        string
	Budget         string
	Timeline       string
	BookingID      string
	Date           string
	Time           string
	PreviousDate   string
	PreviousTime   string
	MeetingURL     string
	Password       string
	MeetingPending bool
	InviteURL      string
	Year           int
}

type mailer struct {
	sender  email.Sender
	company company
	metrics *metrics.Metrics
}

func NewNotifier(sender email.Sender, cfg *config.Config, m *metrics.Metrics) Notifier {
	return &mailer{
		sender: sender,
		company: company{
			Name:    cfg.App.Company.Name,
			Email:   cfg.App.Company.Email,
			Phone:   cfg.App.Company.Phone,
			SiteURL: cfg.App.Company.SiteURL,
		},
		metrics: m,
	}
}

func (n *mailer) Booked(ctx context.Context, booking model.Consultation, ref *model.MeetingRef, inviteURL string) error {
	view := n.view(booking)
	view.InviteURL = inviteURL

	if booking.IsVideo() {
		if ref != nil {
			view.MeetingURL = ref.URL
			view.Password = ref.Password
		} else {
			view.MeetingPending = true
		}
	}

	operator := fmt.Sprintf("New Consultation Booking - %s - %s", booking.Name, view.Date)
	client := fmt.Sprintf("Consultation Confirmed - %s at %s", view.Date, view.Time)

	return n.notifyBoth(ctx, notificationBooked, booking, view, operator, client)
}

func (n *mailer) Cancelled(ctx context.Context, booking model.Consultation) error {
	view := n.view(booking)

	operator := fmt.Sprintf("Consultation Cancelled - %s", booking.Name)
	client := "Your Consultation Has Been Cancelled"

	return n.notifyBoth(ctx, notificationCancelled, booking, view, operator, client)
}

func (n *mailer) Rescheduled(ctx context.Context, previous, current model.Consultation, inviteURL string) error {
	view := n.view(current)
	view.PreviousDate = datetime.FormatLongDate(previous.Date())
	view.PreviousTime = previous.RequestedTime
	view.InviteURL = inviteURL

	if ref := current.Meeting(); ref != nil {
		view.MeetingURL = ref.URL
		view.Password = ref.Password
	} else if current.IsVideo() {
		view.MeetingPending = true
	}

	operator := fmt.Sprintf("Consultation Rescheduled - %s", current.Name)
	client := fmt.Sprintf("Consultation Rescheduled - %s", view.Date)

	return n.notifyBoth(ctx, notificationRescheduled, current, view, operator, client)
}

// notifyBoth sends the operator copy and the client copy concurrently. A failure of one does not stop the other.
func (n *mailer) notifyBoth(
	ctx context.Context,
	kind string,
	booking model.Consultation,
	view emailView,
	operatorSubject, clientSubject string,
) error {
	operatorView := view
	operatorView.Audience = audienceOperator

	clientView := view
	clientView.Audience = audienceClient

	var (
		group                  errgroup.Group
		operatorErr, clientErr error
	)

	group.Go(func() error {
		operatorErr = n.send(ctx, kind, kind+"_operator.html", email.Message{
			To:      n.company.Email,
			ToName:  n.company.Name,
			Subject: operatorSubject,
			ReplyTo: booking.Email,
		}, operatorView)

		return nil
	})

	group.Go(func() error {
		clientErr = n.send(ctx, kind, kind+"_client.html", email.Message{
			To:      booking.Email,
			ToName:  booking.Name,
			Subject: clientSubject,
		}, clientView)

		return nil
	})

	_ = group.Wait()

	return errors.Join(operatorErr, clientErr)
}

func (n *mailer) send(ctx context.Context, kind, name string, msg email.Message, view emailView) (err error) {
	defer func() {
		n.metrics.ObserveNotification(kind, err)
	}()

	msg.HTML, err = render(name, view)
	if err != nil {
		return err
	}

	if _, err = n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s email to %s: %w", kind, view.Audience, err)
	}

	return nil
}

func (n *mailer) view(booking model.Consultation) emailView {
	return emailView{
		Company:      n.company,
		Name:         booking.Name,
		Email:        booking.Email,
		Phone:        booking.Phone,
		Organization: orDefault(booking.Company, notProvided),
		Type:         booking.ConsultationType,
		Details:      booking.ProjectDetails,
		Budget:       orDefault(booking.Budget, notSpecified),
		Timeline:     orDefault(booking.Timeline, notSpecified),
		BookingID:    booking.BookingID,
		Date:         datetime.FormatLongDate(booking.Date()),
		Time:         booking.RequestedTime,
		Year:         timezone.Now().Year(),
	}
}

func render(name string, view emailView) (string, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	return buf.String(), nil
}

func orDefault(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}

	return *value
}
