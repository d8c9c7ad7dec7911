package mailer

import (
	"fmt"

	"github.com/pranavc1515/email-sender/internal/config"
	"github.com/pranavc1515/email-sender/internal/constants"
)

// NewTransport builds the Sender selected by cfg.MailProvider.
func NewTransport(cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case constants.SMTPProvider, "":
		return NewSMTPTransport(SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Secure:   cfg.SMTP.Secure,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			Timeout:  cfg.SMTP.Timeout,
		}), nil
	case constants.ResendProvider:
		return NewResendTransport(ResendConfig{
			APIKey:  cfg.Resend.APIKey,
			Timeout: cfg.SMTP.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider %q", cfg.MailProvider)
	}
}
