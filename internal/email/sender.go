package email

import (
	"context"

	"beautycrm_backend/platform/config"
)

// Assignment describes a pipeline entity handed to a sales rep.
type Assignment struct {
	RepName    string
	EntityType string
	EntityName string
	EntityURL  string
	Automatic  bool
}

type Sender interface {
	SendAssignmentEmail(ctx context.Context, toEmail string, a Assignment) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

type NoopSender struct{}

func (NoopSender) SendAssignmentEmail(ctx context.Context, toEmail string, a Assignment) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

// NewSender returns an SMTP sender, or a no-op sender when SMTP is not configured.
func NewSender(cfg config.SMTPConfig) Sender {
	if !cfg.IsEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}
