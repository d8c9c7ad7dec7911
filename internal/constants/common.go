package constants

// Common string constants used throughout the codebase
const (
	ServiceName = "email-sender"

	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Mail providers
	SMTPProvider   = "smtp"
	ResendProvider = "resend"

	// Status values
	SuccessStatus = "success"
)
