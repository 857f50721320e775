package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

const defaultSMTPPort = 587

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSender struct {
	dialer    dialer
	fromEmail string
	fromName  string
}

func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	if port == 0 {
		port = defaultSMTPPort
	}

	return &SMTPSender{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send dials per message. gomail has no context support, so ctx is only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	message, id := s.buildMessage(msg)

	if err := s.dialer.DialAndSend(message); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}

	return id, nil
}

func (s *SMTPSender) buildMessage(msg Message) (*gomail.Message, string) {
	domain := "localhost"
	if at := strings.LastIndex(s.fromEmail, "@"); at >= 0 {
		domain = s.fromEmail[at+1:]
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)

	message := gomail.NewMessage()
	message.SetHeader("Message-ID", id)
	message.SetAddressHeader("From", s.fromEmail, s.fromName)
	message.SetAddressHeader("To", msg.To, msg.ToName)
	message.SetHeader("Subject", msg.Subject)

	if msg.ReplyTo != "" {
		message.SetHeader("Reply-To", msg.ReplyTo)
	}

	switch {
	case msg.Text != "" && msg.HTML != "":
		message.SetBody("text/plain", msg.Text)
		message.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		message.SetBody("text/html", msg.HTML)
	default:
		message.SetBody("text/plain", msg.Text)
	}

	return message, id
}
