package app

import (
	"cornerstone_backend/internal/email"
	"cornerstone_backend/internal/logger"
)

// NoopEmailProvider drops every message. Used when SMTP is disabled and in
// tests.
type NoopEmailProvider struct{}

func (p *NoopEmailProvider) Send(msg *email.Message) error {
	logger.Debug("email dropped (delivery disabled)", "to", msg.To, "subject", msg.Subject)
	return nil
}
