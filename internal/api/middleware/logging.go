package middleware

import (
	"os"
	"time"

	"github.com/tasmanescape/website/internal/logging"
	"github.com/tasmanescape/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs completed requests through the singleton logger.
// It only logs when the LOG_REQUESTS environment variable is set to "true".
func RequestLogger() gin.HandlerFunc {
	logRequests := os.Getenv("LOG_REQUESTS") == "true"

	if !logRequests {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger := logging.GetLogger()
		logger.LogHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
