package routes

import (
	"github.com/tasmanescape/website/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupSiteRoutes configures the page, client-config and health routes
func SetupSiteRoutes(router *gin.Engine, site *handlers.SiteHandler, health *handlers.HealthHandler) {
	router.GET("/", site.Index)
	router.GET("/api/site-config", site.Config)
	router.GET("/healthz", health.Check)
}
