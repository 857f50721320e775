package service_test

import (
	"agency/config"
	emailInfra "agency/infras/email"
	emailMocks "agency/infras/email/mocks"
	"agency/internal/domains/consultation/model"
	"agency/internal/domains/consultation/service"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotifier(t *testing.T) (service.Notifier, *emailMocks.MockSender) {
	t.Helper()

	sender := emailMocks.NewMockSender(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.App.Company.Name = "Northwind Studio"
	cfg.App.Company.Email = "hello@northwind.dev"

	return service.NewNotifier(sender, cfg, nil), sender
}

// recorder collects messages from concurrent sends keyed by recipient.
type recorder struct {
	mu   sync.Mutex
	sent map[string]emailInfra.Message
}

func record(sender *emailMocks.MockSender) *recorder {
	rec := &recorder{sent: map[string]emailInfra.Message{}}

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg emailInfra.Message) (string, error) {
			rec.mu.Lock()
			defer rec.mu.Unlock()

			rec.sent[msg.To] = msg

			return "id", nil
		}).Times(2)

	return rec
}

func TestNotifier_Booked(t *testing.T) {
	notifier, sender := newNotifier(t)
	booking := created(t, model.TypeVideo)
	booking.Company = strPtr("Acme <Labs>")

	rec := record(sender)

	require.NoError(t, notifier.Booked(context.Background(), booking, nil, ""))
	require.Len(t, rec.sent, 2)

	operator, client := rec.sent["hello@northwind.dev"], rec.sent["jane@example.com"]

	assert.Equal(t, "hello@northwind.dev", operator.To)
	assert.True(t, strings.HasPrefix(operator.Subject, "New Consultation Booking - Jane Doe"))
	assert.Equal(t, "jane@example.com", operator.ReplyTo)
	assert.Contains(t, operator.HTML, "Acme &lt;Labs&gt;")
	assert.Contains(t, operator.HTML, "Not specified")
	assert.Contains(t, operator.HTML, booking.ProjectDetails)

	assert.Equal(t, "jane@example.com", client.To)
	assert.Empty(t, client.ReplyTo)
	assert.Contains(t, client.HTML, "will be sent separately")
	assert.NotContains(t, client.HTML, "Add to calendar")
}

func TestNotifier_OneFailureDoesNotStopTheOther(t *testing.T) {
	notifier, sender := newNotifier(t)
	booking := created(t, model.TypePhone)

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg emailInfra.Message) (string, error) {
			if msg.To == "hello@northwind.dev" {
				return "", errors.New("mailbox full")
			}

			return "id", nil
		}).Times(2)

	err := notifier.Cancelled(context.Background(), booking)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox full")
}

func TestNotifier_Rescheduled(t *testing.T) {
	notifier, sender := newNotifier(t)
	previous := created(t, model.TypePhone)
	current := previous
	current.RequestedDate = previous.RequestedDate.AddDate(0, 0, 1)
	current.RequestedTime = "2:00 PM"

	rec := record(sender)

	require.NoError(t, notifier.Rescheduled(context.Background(), previous, current, "https://cdn.example.com/invite.ics"))

	client := rec.sent["jane@example.com"]
	assert.Equal(t, "Consultation Rescheduled - March 11, 2025", client.Subject)
	assert.Contains(t, client.HTML, "from March 10, 2025 at 10:00 AM to March 11, 2025 at 2:00 PM")
	assert.Contains(t, client.HTML, "https://cdn.example.com/invite.ics")
}
