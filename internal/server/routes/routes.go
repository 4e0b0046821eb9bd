package routes

import (
	"github.com/tasmanescape/website/internal/api/handlers"
	"github.com/tasmanescape/website/internal/api/middleware"
	"github.com/tasmanescape/website/internal/config"
	"github.com/tasmanescape/website/internal/ratelimit"
	"github.com/tasmanescape/website/internal/service"

	"github.com/gin-gonic/gin"
)

// Middleware groups the middleware shared by route setup functions
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}

// Setup builds handlers and registers every route on the engine.
func Setup(router *gin.Engine, cfg *config.Config, limiter ratelimit.Store) {
	m := &Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	verifier := service.NewTurnstileService(cfg.TurnstileSecretKey)
	mailer := service.NewMailService(cfg.ContactTo, cfg.ContactFrom, cfg.SiteName)

	contactHandler := handlers.NewContactHandler(cfg, verifier, mailer, limiter)
	siteHandler := handlers.NewSiteHandler(cfg)
	healthHandler := handlers.NewHealthHandler()

	SetupSiteRoutes(router, siteHandler, healthHandler)

	api := router.Group("/api")
	SetupContactRoutes(api, contactHandler, m)
}
