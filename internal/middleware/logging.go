package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pranavc1515/email-sender/internal/logger"
)

// maxLoggedBody caps how much of a request or response body is logged.
const maxLoggedBody = 4 << 10

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"X-Api-Key":     true,
}

// bodyLogWriter tees the response body into a buffer.
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w bodyLogWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// EnhancedLoggingMiddleware logs request and response headers and bodies.
// It is a no-op unless isDevelopment is set.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := logger.Log.With(zap.String("correlation_id", GetCorrelationID(c)))

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = NewBodyReader(requestBody)
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", flattenHeaders(c.Request.Header, redactedHeaders)),
			zap.Any("body", loggableBody(c.ContentType(), requestBody)),
			zap.Int("body_size", len(requestBody)),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		responseBody := blw.body.Bytes()
		contentType := c.Writer.Header().Get("Content-Type")
		if i := strings.Index(contentType, ";"); i >= 0 {
			contentType = contentType[:i]
		}

		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("headers", flattenHeaders(c.Writer.Header(), nil)),
			zap.Any("body", loggableBody(contentType, responseBody)),
			zap.Int("body_size", len(responseBody)),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware logs one line per completed request.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.Log.Info("Request completed",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)
	}
}

func flattenHeaders(h map[string][]string, redact map[string]bool) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		switch {
		case redact[key]:
			out[key] = "[REDACTED]"
		case len(values) > 0:
			out[key] = values[0]
		}
	}
	return out
}

// loggableBody decodes JSON and form bodies for structured logging and
// truncates anything else.
func loggableBody(contentType string, body []byte) interface{} {
	if len(body) == 0 {
		return nil
	}
	switch contentType {
	case "application/json":
		var v interface{}
		if err := json.Unmarshal(body, &v); err == nil {
			return v
		}
	case "application/x-www-form-urlencoded":
		if values, err := url.ParseQuery(string(body)); err == nil {
			return values
		}
	}
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "...(truncated)"
	}
	return string(body)
}
