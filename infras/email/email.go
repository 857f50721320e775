// Package email delivers transactional mail through SendGrid, Amazon SES, SMTP or a logging stub.
package email

//go:generate go run go.uber.org/mock/mockgen -source=./email.go -destination=./mocks/email_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	"agency/shared/constant"
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	ProviderSendGrid = "sendgrid"
	ProviderSES      = "ses"
	ProviderSMTP     = "smtp"
	ProviderStub     = "stub"

	defaultFromName = "Agency"
	charsetUTF8     = "UTF-8"
)

var ErrNoRecipient = errors.New("email recipient is required")

// Message is one outbound email. ReplyTo is optional.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type sender struct {
	next     Sender
	provider string
	otel     otel.Otel
}

func (s *sender) Send(ctx context.Context, msg Message) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEmailScopeName, constant.OtelEmailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"email.provider": s.provider,
		"email.subject":  msg.Subject,
	})

	if strings.TrimSpace(msg.To) == "" {
		return "", ErrNoRecipient
	}

	id, err = s.next.Send(ctx, msg)
	if err != nil {
		log.Error().Err(err).Str("provider", s.provider).Str("subject", msg.Subject).Msg("failed to send email")

		return "", err
	}

	log.Info().Str("provider", s.provider).Str("messageId", id).Str("subject", msg.Subject).Msg("email sent")

	return id, nil
}

// New selects the provider named by EXTERNAL_EMAIL_PROVIDER. Missing credentials fall back to the stub.
func New(cfg *config.Config, otl otel.Otel) Sender {
	emailCfg := cfg.External.Email

	fromName := emailCfg.FromName
	if fromName == "" {
		fromName = defaultFromName
	}

	var (
		next     Sender
		provider = strings.ToLower(emailCfg.Provider)
	)

	switch provider {
	case ProviderSendGrid:
		if emailCfg.SendGrid.APIKey != "" {
			next = NewSendGridSender(emailCfg.SendGrid.APIKey, "", emailCfg.From, fromName)
		}
	case ProviderSES:
		if client := newSESClient(emailCfg.SES.Region, emailCfg.SES.AccessKeyID, emailCfg.SES.SecretAccessKey); client != nil {
			next = NewSESSender(client, emailCfg.From, fromName)
		}
	case ProviderSMTP:
		if emailCfg.SMTP.Host != "" {
			next = NewSMTPSender(emailCfg.SMTP.Host, emailCfg.SMTP.Port, emailCfg.SMTP.Username, emailCfg.SMTP.Password, emailCfg.From, fromName)
		}
	}

	if next == nil {
		if provider != "" && provider != ProviderStub {
			log.Warn().Str("provider", provider).Msg("email provider not configured, falling back to stub sender")
		}

		provider = ProviderStub
		next = NewStubSender()
	}

	return &sender{next: next, provider: provider, otel: otl}
}
