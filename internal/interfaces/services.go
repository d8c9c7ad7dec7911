package interfaces

import (
	"context"

	"github.com/pranavc1515/email-sender/internal/types/api/params"
	"github.com/pranavc1515/email-sender/internal/types/api/responses"
)

// EmailService validates and dispatches outgoing mail
type EmailService interface {
	SendEmail(ctx context.Context, params params.SendEmailParams) (string, error)
	SendBulkEmail(ctx context.Context, params params.SendBulkEmailParams) (*responses.BulkEmailResponse, error)
}
