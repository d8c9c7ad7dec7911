// Package mailer hands composed messages to a mail provider.
//
// Handlers and services work with the Sender interface; SMTPTransport and
// ResendTransport are the concrete providers.
package mailer

import (
	"context"
	"fmt"
)

// Message is a single outgoing email with one recipient.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender sends one message and returns the provider-assigned message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Verifier is implemented by senders that can check their connection and
// credentials without sending mail.
type Verifier interface {
	Verify(ctx context.Context) error
}

// TransportError is returned when the provider rejects or fails to accept
// a message. Error returns the provider detail unchanged.
type TransportError struct {
	Recipient string
	Err       error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to send to %s", e.Recipient)
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportError(recipient string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Recipient: recipient, Err: err}
}
