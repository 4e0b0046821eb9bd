package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tasmanescape/website/internal/api/constants"
	"github.com/tasmanescape/website/internal/api/dto/v1/contact"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newValidationRouter(captured **contact.ContactRequest) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := NewValidationMiddleware()
	r.POST("/contact", m.ValidateContactRequest(), func(c *gin.Context) {
		if v, ok := c.Get(constants.ContextKeyContact); ok {
			*captured = v.(*contact.ContactRequest)
		}
		c.Status(http.StatusOK)
	})
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func wireError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestValidateContactRequestPassesNormalizedValues(t *testing.T) {
	var captured *contact.ContactRequest
	r := newValidationRouter(&captured)

	w := postJSON(r, `{"name":" Jane ","email":" jane@example.com ","message":" hi there ","turnstileToken":" tok "}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	require.Equal(t, "Jane", captured.Name)
	require.Equal(t, "jane@example.com", captured.Email)
	require.Equal(t, "hi there", captured.Message)
	require.Equal(t, "tok", captured.TurnstileToken)
}

func TestValidateContactRequestMessages(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"name":`, MsgInvalidRequest},
		{"wrong field type", `{"name":42,"email":"a@b.c","message":"hi","turnstileToken":"t"}`, MsgInvalidRequest},
		{"empty body object", `{}`, MsgMissingFields},
		{"missing message", `{"name":"Jane","email":"jane@example.com","turnstileToken":"tok"}`, MsgMissingFields},
		{"invalid email", `{"name":"Jane","email":"a@b","message":"hi","turnstileToken":"tok"}`, MsgInvalidEmail},
		{"missing token", `{"name":"Jane","email":"jane@example.com","message":"hi"}`, MsgMissingToken},
		// Missing fields outrank a malformed email, which outranks the token
		{"missing message and bad email", `{"name":"Jane","email":"nope","turnstileToken":"tok"}`, MsgMissingFields},
		{"bad email and missing token", `{"name":"Jane","email":"nope","message":"hi"}`, MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *contact.ContactRequest
			r := newValidationRouter(&captured)

			w := postJSON(r, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Equal(t, tt.message, wireError(t, w))
			require.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			require.Nil(t, captured, "handler must not run for invalid input")
		})
	}
}
