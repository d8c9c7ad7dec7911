package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranavc1515/email-sender/internal/constants"
	"github.com/pranavc1515/email-sender/internal/types/api/responses"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Health check
// @Description Check if the API is running
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Message:   constants.HealthMessage,
		Status:    constants.SuccessStatus,
		Timestamp: timestamp(h.now),
	})
}
