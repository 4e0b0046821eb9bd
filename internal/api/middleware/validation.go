package middleware

import (
	"errors"
	"net/http"

	"github.com/tasmanescape/website/internal/api/constants"
	"github.com/tasmanescape/website/internal/api/dto/v1/contact"
	"github.com/tasmanescape/website/internal/api/sanitization"
	"github.com/tasmanescape/website/internal/api/validation"
	"github.com/tasmanescape/website/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Public validation messages for the contact form
const (
	MsgInvalidRequest = "Invalid request."
	MsgMissingFields  = "Please complete all fields."
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgMissingToken   = "Anti-spam check missing."
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// ValidateContactRequest parses, normalizes and validates a contact form
// submission, then stashes the typed request in the context for the handler.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleError(c, http.StatusBadRequest, MsgInvalidRequest)
			return
		}

		// Trim and cap before validating so presence checks see the
		// normalized values.
		sanitization.NormalizeContact(&req)

		if err := m.validate.Struct(&req); err != nil {
			utils.HandleError(c, http.StatusBadRequest, contactValidationMessage(err))
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

// contactValidationMessage maps validator errors onto the public messages.
// Missing visible fields outrank a malformed email, which outranks a
// missing anti-spam token, matching the order the checks are specified in.
func contactValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MsgInvalidRequest
	}

	message := MsgInvalidRequest
	rank := 0
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required" && fe.Field() != "TurnstileToken":
			if rank < 3 {
				rank, message = 3, MsgMissingFields
			}
		case fe.Tag() == "contact_email":
			if rank < 2 {
				rank, message = 2, MsgInvalidEmail
			}
		case fe.Tag() == "required":
			if rank < 1 {
				rank, message = 1, MsgMissingToken
			}
		}
	}
	return message
}
