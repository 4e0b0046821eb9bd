package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from trusted proxy headers. The server
// runs behind a reverse proxy or CDN, so the proxy-supplied headers are
// preferred over the socket peer address.
func GetRealIP(c *gin.Context) string {
	// Set by Cloudflare
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}

	// Set by most reverse proxies
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	// X-Forwarded-For is a comma-separated list: client, proxy1, proxy2, ...
	// The leftmost entry is the originating client.
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	return c.ClientIP()
}
