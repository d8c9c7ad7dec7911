package responses

// HealthResponse is returned by GET /.
type HealthResponse struct {
	Message   string `json:"message" example:"Email Sender API is running"`
	Status    string `json:"status" example:"success"`
	Timestamp string `json:"timestamp" example:"2024-01-01T12:00:00.000Z"`
}
