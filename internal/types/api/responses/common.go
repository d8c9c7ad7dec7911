package responses

// ErrorResponse is returned by every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Failed to send email"`
	Error   string `json:"error,omitempty" example:"Invalid login: 535-5.7.8 Username and Password not accepted"`
}
