package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pranavc1515/email-sender/internal/logger"
	"github.com/pranavc1515/email-sender/internal/mailer"
	"github.com/pranavc1515/email-sender/internal/mocks"
	"github.com/pranavc1515/email-sender/internal/services"
	"github.com/pranavc1515/email-sender/internal/types/api/params"
)

const testSender = "sender@gmail.com"

var fixedNow = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 123_000_000, time.UTC) }

func init() {
	logger.InitLogger("test")
}

// newEmailRouter wires the real service over a mock transport.
func newEmailRouter(t *testing.T) (*gin.Engine, *mocks.MockSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sender := mocks.NewMockSenderForTest(t)
	handler := NewEmailHandler(services.NewEmailService(sender, testSender, nil))
	handler.now = fixedNow

	router := gin.New()
	router.POST("/api/send-email", handler.SendEmail)
	router.POST("/api/send-bulk-email", handler.SendBulkEmail)
	return router, sender
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestEmailHandler_SendEmail(t *testing.T) {
	router, sender := newEmailRouter(t)

	sender.EXPECT().Send(gomock.Any(), mailer.Message{
		From: testSender, To: "user@example.com", Subject: "Test", Text: "Hello", HTML: "Hello",
	}).Return("<abc@gmail.com>", nil)

	w := postJSON(router, "/api/send-email", `{"to":"user@example.com","subject":"Test","body":"Hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully","messageId":"<abc@gmail.com>","timestamp":"2024-03-01T09:30:00.123Z"}`, w.Body.String())
}

func TestEmailHandler_SendEmail_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing to", body: `{"subject":"Test","body":"Hello"}`, message: "Recipient email (to) is required"},
		{name: "empty to", body: `{"to":"","subject":"Test","body":"Hello"}`, message: "Recipient email (to) is required"},
		{name: "to checked first", body: `{}`, message: "Recipient email (to) is required"},
		{name: "empty body is an empty object", body: ``, message: "Recipient email (to) is required"},
		{name: "missing subject", body: `{"to":"user@example.com","body":"Hello"}`, message: "Email subject is required"},
		{name: "missing content", body: `{"to":"user@example.com","subject":"Test"}`, message: "Email body or HTML content is required"},
		{name: "empty content", body: `{"to":"user@example.com","subject":"Test","body":"","html":""}`, message: "Email body or HTML content is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newEmailRouter(t)

			w := postJSON(router, "/api/send-email", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]interface{}{"success": false, "message": tt.message}, decode(t, w))
		})
	}
}

func TestEmailHandler_SendEmail_TransportFailure(t *testing.T) {
	router, sender := newEmailRouter(t)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return("", &mailer.TransportError{Recipient: "user@example.com", Err: errors.New("Invalid login: 535-5.7.8 Username and Password not accepted")})

	w := postJSON(router, "/api/send-email", `{"to":"user@example.com","subject":"Test","html":"<p>x</p>"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]interface{}{
		"success": false,
		"message": "Failed to send email",
		"error":   "Invalid login: 535-5.7.8 Username and Password not accepted",
	}, decode(t, w))
}

func TestEmailHandler_SendEmail_MalformedBody(t *testing.T) {
	router, _ := newEmailRouter(t)

	w := postJSON(router, "/api/send-email", `{"to":`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to send email", body["message"])
	assert.NotEmpty(t, body["error"])
}

func TestEmailHandler_SendEmail_Form(t *testing.T) {
	router, sender := newEmailRouter(t)
	sender.EXPECT().Send(gomock.Any(), mailer.Message{
		From: testSender, To: "user@example.com", Subject: "Form", Text: "", HTML: "<b>hi</b>",
	}).Return("<form@gmail.com>", nil)

	w := postForm(router, "/api/send-email", url.Values{
		"to": {"user@example.com"}, "subject": {"Form"}, "html": {"<b>hi</b>"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<form@gmail.com>", decode(t, w)["messageId"])
}

func TestEmailHandler_SendBulkEmail(t *testing.T) {
	router, sender := newEmailRouter(t)
	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("<a@gmail.com>", nil),
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("Invalid recipient")),
	)

	w := postJSON(router, "/api/send-bulk-email", `{"recipients":["a@x.com","bad"],"subject":"S","body":"B"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Bulk email operation completed. 1 successful, 1 failed.",
		"results": [{"recipient":"a@x.com","success":true,"messageId":"<a@gmail.com>"}],
		"errors": [{"recipient":"bad","success":false,"error":"Invalid recipient"}],
		"timestamp": "2024-03-01T09:30:00.123Z"
	}`, w.Body.String())
}

func TestEmailHandler_SendBulkEmail_AllFailedStillSucceeds(t *testing.T) {
	router, sender := newEmailRouter(t)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("timeout")).Times(3)

	w := postJSON(router, "/api/send-bulk-email", `{"recipients":["a@x.com","b@x.com","c@x.com"],"subject":"S","html":"<p>B</p>"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Bulk email operation completed. 0 successful, 3 failed.", body["message"])
	assert.Equal(t, []interface{}{}, body["results"])
	assert.Len(t, body["errors"], 3)
}

func TestEmailHandler_SendBulkEmail_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing recipients", body: `{"subject":"S","body":"B"}`, message: "Recipients array is required and must not be empty"},
		{name: "null recipients", body: `{"recipients":null,"subject":"S","body":"B"}`, message: "Recipients array is required and must not be empty"},
		{name: "string recipients", body: `{"recipients":"a@x.com","subject":"S","body":"B"}`, message: "Recipients array is required and must not be empty"},
		{name: "empty recipients", body: `{"recipients":[],"subject":"S","body":"B"}`, message: "Recipients array is required and must not be empty"},
		{name: "recipients checked first", body: `{}`, message: "Recipients array is required and must not be empty"},
		{name: "missing subject", body: `{"recipients":["a@x.com"],"body":"B"}`, message: "Email subject is required"},
		{name: "missing content", body: `{"recipients":["a@x.com"],"subject":"S"}`, message: "Email body or HTML content is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newEmailRouter(t)

			w := postJSON(router, "/api/send-bulk-email", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]interface{}{"success": false, "message": tt.message}, decode(t, w))
		})
	}
}

func TestEmailHandler_SendBulkEmail_NonStringRecipient(t *testing.T) {
	router, sender := newEmailRouter(t)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("<ok@gmail.com>", nil)

	w := postJSON(router, "/api/send-bulk-email", `{"recipients":[7,"a@x.com"],"subject":"S","body":"B"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Bulk email operation completed. 1 successful, 1 failed.", body["message"])
	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, float64(7), errs[0].(map[string]interface{})["recipient"])
}

func TestEmailHandler_SendBulkEmail_Form(t *testing.T) {
	router, sender := newEmailRouter(t)
	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), mailer.Message{
			From: testSender, To: "a@x.com", Subject: "S", Text: "B", HTML: "B",
		}).Return("<1@gmail.com>", nil),
		sender.EXPECT().Send(gomock.Any(), mailer.Message{
			From: testSender, To: "b@x.com", Subject: "S", Text: "B", HTML: "B",
		}).Return("<2@gmail.com>", nil),
	)

	w := postForm(router, "/api/send-bulk-email", url.Values{
		"recipients[]": {"a@x.com", "b@x.com"}, "subject": {"S"}, "body": {"B"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["results"], 2)
}

func TestEmailHandler_SendBulkEmail_IndexedForm(t *testing.T) {
	router, sender := newEmailRouter(t)
	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), mailer.Message{
			From: testSender, To: "a@x.com", Subject: "S", Text: "B", HTML: "B",
		}).Return("<1@gmail.com>", nil),
		sender.EXPECT().Send(gomock.Any(), mailer.Message{
			From: testSender, To: "b@x.com", Subject: "S", Text: "B", HTML: "B",
		}).Return("<2@gmail.com>", nil),
		sender.EXPECT().Send(gomock.Any(), mailer.Message{
			From: testSender, To: "c@x.com", Subject: "S", Text: "B", HTML: "B",
		}).Return("<3@gmail.com>", nil),
	)

	w := postForm(router, "/api/send-bulk-email", url.Values{
		"recipients[10]": {"c@x.com"}, "recipients[0]": {"a@x.com"}, "recipients[2]": {"b@x.com"},
		"subject": {"S"}, "body": {"B"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["results"], 3)
}

func TestEmailHandler_UnsupportedContentTypeIsEmptyBody(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		message     string
	}{
		{
			name:        "multipart send",
			path:        "/api/send-email",
			contentType: "multipart/form-data; boundary=XYZ",
			body:        "--XYZ\r\nContent-Disposition: form-data; name=\"to\"\r\n\r\nuser@example.com\r\n--XYZ--\r\n",
			message:     "Recipient email (to) is required",
		},
		{
			name:        "text bulk",
			path:        "/api/send-bulk-email",
			contentType: "text/plain",
			body:        `{"recipients":["a@x.com"],"subject":"S","body":"B"}`,
			message:     "Recipients array is required and must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newEmailRouter(t)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]interface{}{"success": false, "message": tt.message}, decode(t, w))
		})
	}
}

func TestEmailHandler_SendBulkEmail_MalformedBody(t *testing.T) {
	router, _ := newEmailRouter(t)

	w := postJSON(router, "/api/send-bulk-email", `[1,2`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Failed to send bulk emails", body["message"])
	assert.NotEmpty(t, body["error"])
}

func TestEmailHandler_ServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := mocks.NewMockEmailServiceForTest(t)
	handler := NewEmailHandler(service)
	handler.now = fixedNow

	router := gin.New()
	router.POST("/api/send-email", handler.SendEmail)
	router.POST("/api/send-bulk-email", handler.SendBulkEmail)

	service.EXPECT().SendEmail(gomock.Any(), params.SendEmailParams{To: "a@x.com", Subject: "S", Body: "B"}).
		Return("", context.DeadlineExceeded)
	service.EXPECT().SendBulkEmail(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("unexpected"))

	w := postJSON(router, "/api/send-email", `{"to":"a@x.com","subject":"S","body":"B"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "context deadline exceeded", decode(t, w)["error"])

	w = postJSON(router, "/api/send-bulk-email", `{"recipients":["a@x.com"],"subject":"S","body":"B"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send bulk emails", decode(t, w)["message"])
}
