package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer logs messages instead of delivering them. Default in
// development, where no SMTP relay is configured.
type LogMailer struct {
	log *zap.Logger
}

// NewLogMailer creates a log-only mailer
func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send logs the message and reports success
func (l *LogMailer) Send(_ context.Context, msg Message) error {
	l.log.Info("outbound email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}
