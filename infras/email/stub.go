package email

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// StubSender logs instead of delivering. Used in development and when no provider is configured.
type StubSender struct{}

func NewStubSender() *StubSender {
	return &StubSender{}
}

func (s *StubSender) Send(_ context.Context, msg Message) (string, error) {
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("stub email sender: would send email")

	return "stub-" + uuid.NewString(), nil
}
