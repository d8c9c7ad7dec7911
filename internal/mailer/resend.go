package mailer

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// resendEmails is the part of the Resend client used for delivery.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendConfig configures the Resend transport.
type ResendConfig struct {
	APIKey  string
	Timeout time.Duration
}

// ResendTransport delivers messages through the Resend HTTP API.
type ResendTransport struct {
	emails resendEmails
	apiKey string
}

// NewResendTransport creates a Resend transport from cfg.
func NewResendTransport(cfg ResendConfig) *ResendTransport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	client := resend.NewCustomClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIKey)
	return &ResendTransport{emails: client.Emails, apiKey: cfg.APIKey}
}

// Send delivers msg and returns the id Resend assigned to it.
func (t *ResendTransport) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", transportError(msg.To, ErrNoRecipient)
	}
	if msg.From == "" {
		return "", transportError(msg.To, ErrNoSender)
	}

	sent, err := t.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", transportError(msg.To, errors.Wrap(err, "resend"))
	}
	if sent == nil {
		return "", nil
	}
	return sent.Id, nil
}

// Verify only checks that an API key is present; Resend has no
// side-effect free credential check.
func (t *ResendTransport) Verify(_ context.Context) error {
	if t.apiKey == "" {
		return errors.New("missing Resend API key")
	}
	return nil
}
