package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"vox-market.backend/internal/config"
)

// Message is a single outbound email
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends lifecycle notifications. Delivery is best-effort: callers
// commit their state change first and only log a send failure.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New selects a mailer from configuration
func New(cfg config.MailerConfig, log *zap.Logger) Mailer {
	if cfg.Type == "smtp" {
		return NewSMTPMailer(cfg)
	}
	return NewLogMailer(log)
}

// DocumentSubmittedMessage notifies the admin address of a new submission
func DocumentSubmittedMessage(vendorName, adminEmail string) Message {
	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("New vendor verification submission from %s", vendorName),
		Body: fmt.Sprintf("A new vendor verification submission has been received from %s. "+
			"Please review the documents in the admin panel.\n\nBest regards,\nVox System", vendorName),
	}
}

// DocumentApprovedMessage notifies a vendor their documents were approved
func DocumentApprovedMessage(vendorName, vendorEmail string) Message {
	return Message{
		To:      vendorEmail,
		Subject: "Your vendor verification documents have been approved",
		Body: fmt.Sprintf("Dear %s,\n\nYour vendor verification documents have been reviewed and approved. "+
			"You can now access the product management features.\n\nBest regards,\nVox Admin Team", vendorName),
	}
}

// DocumentRejectedMessage notifies a vendor their documents need revision
func DocumentRejectedMessage(vendorName, vendorEmail, notes string) Message {
	return Message{
		To:      vendorEmail,
		Subject: "Your vendor verification documents require revision",
		Body: fmt.Sprintf("Dear %s,\n\nYour vendor verification documents have been reviewed and require revision.\n\n"+
			"Reviewer Notes:\n%s\n\nPlease resubmit your documents with the necessary corrections.\n\n"+
			"Best regards,\nVox Admin Team", vendorName, notes),
	}
}
