package email

import (
	"agency/shared/constant"
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridEndpoint = "/v3/mail/send"

type SendGridSender struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
}

// NewSendGridSender talks to host, or the public SendGrid API when host is empty.
func NewSendGridSender(apiKey, host, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey:    apiKey,
		host:      host,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// client builds a request per send; the SendGrid client stores the body on itself.
func (s *SendGridSender) client() *sendgrid.Client {
	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = http.MethodPost

	return &sendgrid.Client{Request: request}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	if msg.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	response, err := s.client().SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid send failed: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	if ids := response.Headers[constant.RequestHeaderMessageID]; len(ids) > 0 {
		return ids[0], nil
	}

	return "", nil
}
