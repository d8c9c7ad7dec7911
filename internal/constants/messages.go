package constants

// Messages returned to API callers. Clients match on these strings, keep
// them stable.
const (
	HealthMessage = "Email Sender API is running"

	RecipientRequired  = "Recipient email (to) is required"
	RecipientsRequired = "Recipients array is required and must not be empty"
	SubjectRequired    = "Email subject is required"
	ContentRequired    = "Email body or HTML content is required"

	EmailSent           = "Email sent successfully"
	EmailSendFailed     = "Failed to send email"
	BulkEmailSendFailed = "Failed to send bulk emails"

	// BulkEmailSummaryFormat takes the successful and failed counts.
	BulkEmailSummaryFormat = "Bulk email operation completed. %d successful, %d failed."
)
