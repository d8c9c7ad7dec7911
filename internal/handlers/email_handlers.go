package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pranavc1515/email-sender/internal/constants"
	"github.com/pranavc1515/email-sender/internal/interfaces"
	"github.com/pranavc1515/email-sender/internal/services"
	"github.com/pranavc1515/email-sender/internal/types/api/params"
	"github.com/pranavc1515/email-sender/internal/types/api/requests"
	"github.com/pranavc1515/email-sender/internal/types/api/responses"
)

// EmailHandler serves the send endpoints.
type EmailHandler struct {
	service interfaces.EmailService
	now     func() time.Time
}

func NewEmailHandler(service interfaces.EmailService) *EmailHandler {
	return &EmailHandler{service: service, now: time.Now}
}

// Use types from the centralized packages
type (
	SendEmailRequest     = requests.SendEmailRequest
	SendBulkEmailRequest = requests.SendBulkEmailRequest
	SendEmailResponse    = responses.SendEmailResponse
	BulkEmailResponse    = responses.BulkEmailResponse
)

// SendEmail godoc
// @Summary Send a single email
// @Description Send an email to a single recipient
// @Tags Email
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body SendEmailRequest true "Email to send"
// @Success 200 {object} SendEmailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/send-email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := bindRequest(c, &req); err != nil {
		sendError(c, http.StatusInternalServerError, constants.EmailSendFailed, err)
		return
	}

	messageID, err := h.service.SendEmail(c.Request.Context(), params.SendEmailParams{
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
		HTML:    req.HTML,
	})
	if err != nil {
		if verr, ok := services.IsValidationError(err); ok {
			sendValidationError(c, verr)
			return
		}
		sendError(c, http.StatusInternalServerError, constants.EmailSendFailed, err)
		return
	}

	c.JSON(http.StatusOK, SendEmailResponse{
		Success:   true,
		Message:   constants.EmailSent,
		MessageID: messageID,
		Timestamp: timestamp(h.now),
	})
}

// SendBulkEmail godoc
// @Summary Send bulk emails
// @Description Send the same email to multiple recipients, one after the other. Individual failures are reported in errors.
// @Tags Email
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body SendBulkEmailRequest true "Bulk email to send"
// @Success 200 {object} BulkEmailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/send-bulk-email [post]
func (h *EmailHandler) SendBulkEmail(c *gin.Context) {
	var req SendBulkEmailRequest
	if err := bindRequest(c, &req); err != nil {
		sendError(c, http.StatusInternalServerError, constants.BulkEmailSendFailed, err)
		return
	}

	recipients := decodeRecipients(req.Recipients)
	if isFormRequest(c) {
		recipients = formRecipients(c)
	}

	result, err := h.service.SendBulkEmail(c.Request.Context(), params.SendBulkEmailParams{
		Recipients: recipients,
		Subject:    req.Subject,
		Body:       req.Body,
		HTML:       req.HTML,
	})
	if err != nil {
		if verr, ok := services.IsValidationError(err); ok {
			sendValidationError(c, verr)
			return
		}
		sendError(c, http.StatusInternalServerError, constants.BulkEmailSendFailed, err)
		return
	}

	result.Timestamp = timestamp(h.now)
	c.JSON(http.StatusOK, result)
}
