package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pranavc1515/email-sender/internal/constants"
	"github.com/pranavc1515/email-sender/internal/logger"
	"github.com/pranavc1515/email-sender/internal/mailer"
	"github.com/pranavc1515/email-sender/internal/types/api/params"
	"github.com/pranavc1515/email-sender/internal/types/api/responses"
)

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// EmailService validates requests and hands messages to the mail transport.
type EmailService struct {
	sender mailer.Sender
	from   string
	logger *zap.Logger
}

// NewEmailService creates an EmailService that sends from the given address.
func NewEmailService(sender mailer.Sender, from string, log *zap.Logger) *EmailService {
	if log == nil {
		log = logger.Log
	}
	return &EmailService{
		sender: sender,
		from:   from,
		logger: log,
	}
}

// SendEmail validates params, sends one message and returns its message id.
func (s *EmailService) SendEmail(ctx context.Context, params params.SendEmailParams) (string, error) {
	if params.To == "" {
		return "", &ValidationError{Field: "to", Message: constants.RecipientRequired}
	}
	if err := validateContent(params.Subject, params.Body, params.HTML); err != nil {
		return "", err
	}

	messageID, err := s.sender.Send(ctx, s.message(params.To, params.Subject, params.Body, params.HTML))
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.String("to", params.To),
			zap.String("subject", params.Subject))
		return "", err
	}

	s.logger.Info("email sent successfully",
		zap.String("message_id", messageID),
		zap.String("to", params.To))

	return messageID, nil
}

// SendBulkEmail sends the same message to every recipient, one after the
// other in input order. Individual failures are collected, not returned.
func (s *EmailService) SendBulkEmail(ctx context.Context, params params.SendBulkEmailParams) (*responses.BulkEmailResponse, error) {
	if len(params.Recipients) == 0 {
		return nil, &ValidationError{Field: "recipients", Message: constants.RecipientsRequired}
	}
	if err := validateContent(params.Subject, params.Body, params.HTML); err != nil {
		return nil, err
	}

	outcomes := make([]responses.SendResult, 0, len(params.Recipients))
	for _, recipient := range params.Recipients {
		outcomes = append(outcomes, s.sendOne(ctx, recipient, params))
	}

	results := make([]responses.SendResult, 0, len(outcomes))
	failures := make([]responses.SendResult, 0)
	for _, outcome := range outcomes {
		if outcome.Success {
			results = append(results, outcome)
		} else {
			failures = append(failures, outcome)
		}
	}

	s.logger.Info("bulk email operation completed",
		zap.Int("recipients", len(params.Recipients)),
		zap.Int("successful", len(results)),
		zap.Int("failed", len(failures)))

	return &responses.BulkEmailResponse{
		Success: true,
		Message: fmt.Sprintf(constants.BulkEmailSummaryFormat, len(results), len(failures)),
		Results: results,
		Errors:  failures,
	}, nil
}

func (s *EmailService) sendOne(ctx context.Context, recipient interface{}, params params.SendBulkEmailParams) responses.SendResult {
	to, ok := recipient.(string)
	if !ok {
		return responses.SendResult{
			Recipient: recipient,
			Success:   false,
			Error:     fmt.Sprintf("invalid recipient %v: must be a string", recipient),
		}
	}

	messageID, err := s.sender.Send(ctx, s.message(to, params.Subject, params.Body, params.HTML))
	if err != nil {
		s.logger.Warn("bulk recipient failed",
			zap.Error(err),
			zap.String("to", to))
		return responses.SendResult{Recipient: to, Success: false, Error: err.Error()}
	}
	return responses.SendResult{Recipient: to, Success: true, MessageID: messageID}
}

// message applies the body fallbacks: text is the body, html falls back to
// the body when no html is given.
func (s *EmailService) message(to, subject, body, html string) mailer.Message {
	if html == "" {
		html = body
	}
	return mailer.Message{
		From:    s.from,
		To:      to,
		Subject: subject,
		Text:    body,
		HTML:    html,
	}
}

func validateContent(subject, body, html string) error {
	if subject == "" {
		return &ValidationError{Field: "subject", Message: constants.SubjectRequired}
	}
	if body == "" && html == "" {
		return &ValidationError{Field: "body", Message: constants.ContentRequired}
	}
	return nil
}

// IsValidationError reports whether err is a *ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
