package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/tasmanescape/website/internal/api/dto/common"
	"github.com/tasmanescape/website/internal/logging"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := logging.GetLogger()
				logger.Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString("RequestID"),
					r,
					debug.Stack(),
				)

				c.Header("Cache-Control", "no-store")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorBody("Internal server error."))
			}
		}()

		c.Next()
	}
}
