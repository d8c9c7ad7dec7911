package requests

import "encoding/json"

// SendEmailRequest is the body of POST /api/send-email.
type SendEmailRequest struct {
	To      string `json:"to" form:"to" example:"recipient@example.com"`
	Subject string `json:"subject" form:"subject" example:"Test Email"`
	Body    string `json:"body,omitempty" form:"body" example:"This is a test email body"`
	HTML    string `json:"html,omitempty" form:"html" example:"<h1>Hello</h1><p>This is a test email</p>"`
}

// SendBulkEmailRequest is the body of POST /api/send-bulk-email.
// Recipients is kept raw so that a non-array value can be told apart from
// an array holding non-string elements.
type SendBulkEmailRequest struct {
	Recipients json.RawMessage `json:"recipients" form:"-" swaggertype:"array,string" example:"user1@example.com,user2@example.com"`
	Subject    string          `json:"subject" form:"subject" example:"Bulk Test Email"`
	Body       string          `json:"body,omitempty" form:"body" example:"This is a bulk test email"`
	HTML       string          `json:"html,omitempty" form:"html" example:"<h1>Bulk Email</h1>"`
}
