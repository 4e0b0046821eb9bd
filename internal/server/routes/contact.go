package routes

import (
	"github.com/tasmanescape/website/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(api *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	// Public endpoint; per-IP throttling happens inside the handler so it
	// lands in the specified position between validation and verification.
	api.POST("/contact",
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	)
}
