package utils

import (
	"github.com/tasmanescape/website/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetLogger()
	logger.Error("%s: %v", message, err)
}

// LogHTTPError logs a request-scoped error with method, path and client IP.
func LogHTTPError(c *gin.Context, status int, message string, err error) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)
}
