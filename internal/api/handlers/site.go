package handlers

import (
	"net/http"
	"time"

	"github.com/tasmanescape/website/internal/api/dto/v1/site"
	"github.com/tasmanescape/website/internal/config"
	"github.com/tasmanescape/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the marketing pages and the client configuration.
type SiteHandler struct {
	cfg *config.Config
}

func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{cfg: cfg}
}

// Index renders the landing page. The footer year and the booking-link
// state are computed here, once per render, from the injected config.
func (h *SiteHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"SiteName":         h.cfg.SiteName,
		"Year":             time.Now().Year(),
		"BookingURL":       h.cfg.BookingURL,
		"InstagramURL":     h.cfg.InstagramURL,
		"TurnstileSiteKey": h.cfg.TurnstileSiteKey,
	})
}

// Config returns the read-only client configuration consumed by the
// browser script.
func (h *SiteHandler) Config(c *gin.Context) {
	utils.JSON(c, http.StatusOK, site.SiteConfig{
		ContactEndpoint: config.ContactEndpoint,
		BookingURL:      h.cfg.BookingURL,
		InstagramURL:    h.cfg.InstagramURL,
	})
}
