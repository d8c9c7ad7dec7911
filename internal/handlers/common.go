package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/pranavc1515/email-sender/internal/middleware"
	"github.com/pranavc1515/email-sender/internal/services"
	"github.com/pranavc1515/email-sender/internal/types/api/responses"
)

// TimestampLayout is ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Use types from the centralized packages
type (
	ErrorResponse = responses.ErrorResponse
)

func timestamp(now func() time.Time) string {
	return now().UTC().Format(TimestampLayout)
}

// sendError logs err and responds with the generic message plus the error detail.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	middleware.LogWithCorrelationID(c.Request.Context()).Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	resp := ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// sendValidationError responds 400 with the validation message only.
func sendValidationError(c *gin.Context, verr *services.ValidationError) {
	middleware.LogWithCorrelationID(c.Request.Context()).Warn("request validation failed",
		zap.String("field", verr.Field),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: verr.Message})
}

// bindRequest decodes a JSON or urlencoded body into obj. An empty body,
// or one of any other content type, leaves obj untouched.
func bindRequest(c *gin.Context, obj interface{}) error {
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		return c.ShouldBindWith(obj, binding.Form)
	case binding.MIMEJSON, "":
	default:
		return nil
	}

	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return binding.JSON.BindBody(body, obj)
}

func isFormRequest(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEPOSTForm
}

// decodeRecipients returns the elements of a JSON array. A missing value,
// null or anything that is not an array yields nil.
func decodeRecipients(raw json.RawMessage) []interface{} {
	if len(raw) == 0 {
		return nil
	}
	var recipients []interface{}
	if err := json.Unmarshal(raw, &recipients); err != nil {
		return nil
	}
	return recipients
}

// formRecipients collects repeated "recipients" and "recipients[]" form
// keys, then indexed "recipients[N]" keys in index order.
func formRecipients(c *gin.Context) []interface{} {
	var recipients []interface{}
	for _, key := range []string{"recipients", "recipients[]"} {
		for _, value := range c.PostFormArray(key) {
			recipients = append(recipients, value)
		}
	}

	type indexedValue struct {
		index int
		value string
	}
	var indexed []indexedValue
	for key, value := range c.PostFormMap("recipients") {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 {
			continue
		}
		indexed = append(indexed, indexedValue{index: i, value: value})
	}
	sort.Slice(indexed, func(a, b int) bool { return indexed[a].index < indexed[b].index })
	for _, iv := range indexed {
		recipients = append(recipients, iv.value)
	}
	return recipients
}
