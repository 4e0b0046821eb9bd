package utils

import (
	"net/http"

	"github.com/tasmanescape/website/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response. Every API response carries cache-control:
// no-store because validation and rate-limit outcomes are caller- and
// time-specific and must never be served from an intermediary cache.
func JSON(c *gin.Context, status int, body interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, body)
}

// HandleOK sends a success acknowledgment
func HandleOK(c *gin.Context) {
	JSON(c, http.StatusOK, common.Ack{OK: true})
}

// HandleError sends an error response with the given status and public
// message, and stops further handlers.
func HandleError(c *gin.Context, status int, message string) {
	JSON(c, status, common.NewErrorBody(message))
	c.Abort()
}

// HandleErrorWithLog behaves like HandleError but also logs the underlying
// error with request context. The logged detail never reaches the caller.
func HandleErrorWithLog(c *gin.Context, err error, status int, message string) {
	LogHTTPError(c, status, message, err)
	HandleError(c, status, message)
}
