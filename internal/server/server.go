package server

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	apimiddleware "github.com/tasmanescape/website/internal/api/middleware"
	"github.com/tasmanescape/website/internal/config"
	"github.com/tasmanescape/website/internal/logging"
	"github.com/tasmanescape/website/internal/middleware"
	"github.com/tasmanescape/website/internal/ratelimit"
	"github.com/tasmanescape/website/internal/server/routes"
	"github.com/tasmanescape/website/web"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	limiter ratelimit.Store
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger; requests go through our own logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	return &Server{
		router: gin.New(),
		cfg:    cfg,
	}
}

// Init wires middleware, handlers and routes. It connects the rate-limit
// store when one is configured; without one the contact endpoint simply
// skips per-IP throttling.
func (s *Server) Init() error {
	logger := logging.GetLogger()

	if s.cfg.RedisURL != "" {
		store, err := ratelimit.NewRedisStore(s.cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect rate-limit store: %w", err)
		}
		s.limiter = store
		logger.Info("Per-IP rate limiting enabled (redis)")
	} else {
		logger.Warn("REDIS_URL not set; contact endpoint runs without per-IP rate limiting")
	}

	// Global middleware
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Recovery())
	s.router.Use(apimiddleware.CORS(s.cfg))
	s.router.Use(apimiddleware.RateLimitMiddleware(apimiddleware.RateLimitConfig{
		RPS:   s.cfg.RateLimitRPS,
		Burst: s.cfg.RateLimitBurst,
	}))
	s.router.Use(apimiddleware.RequestLogger())

	// Embedded templates and static assets
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.router.SetHTMLTemplate(tmpl)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static assets: %w", err)
	}
	s.router.StaticFS("/static", http.FS(staticFS))

	routes.Setup(s.router, s.cfg, s.limiter)

	return nil
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
