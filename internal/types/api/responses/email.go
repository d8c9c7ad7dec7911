package responses

// SendEmailResponse is returned by a successful single send.
type SendEmailResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Email sent successfully"`
	MessageID string `json:"messageId" example:"<abc123@gmail.com>"`
	Timestamp string `json:"timestamp" example:"2024-01-01T12:00:00.000Z"`
}

// SendResult is the outcome for one recipient of a bulk send. Recipient
// echoes the value given in the request.
type SendResult struct {
	Recipient interface{} `json:"recipient" swaggertype:"string" example:"user1@example.com"`
	Success   bool        `json:"success" example:"true"`
	MessageID string      `json:"messageId,omitempty" example:"<abc123@gmail.com>"`
	Error     string      `json:"error,omitempty" example:"Invalid recipient"`
}

// BulkEmailResponse is returned by POST /api/send-bulk-email once the
// request passed validation, whatever the individual outcomes.
type BulkEmailResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message" example:"Bulk email operation completed. 1 successful, 1 failed."`
	Results   []SendResult `json:"results"`
	Errors    []SendResult `json:"errors"`
	Timestamp string       `json:"timestamp" example:"2024-01-01T12:00:00.000Z"`
}
