package handlers

import (
	"net/http"
	"time"

	"github.com/tasmanescape/website/internal/api/constants"
	"github.com/tasmanescape/website/internal/api/dto/v1/contact"
	"github.com/tasmanescape/website/internal/config"
	"github.com/tasmanescape/website/internal/ratelimit"
	"github.com/tasmanescape/website/internal/service"
	"github.com/tasmanescape/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// TokenVerifier checks an anti-spam token against the vendor's
// verification service.
type TokenVerifier interface {
	VerifyToken(token, remoteIP string) (bool, error)
}

// ContactMailer delivers a composed contact email.
type ContactMailer interface {
	SendContactEmail(email *service.ContactEmail) error
}

// ContactHandler processes contact form submissions: per-IP throttle, token
// verification, then email dispatch. Each step short-circuits with its own
// status; a submission is never mailed unless its token verified in the
// same request.
type ContactHandler struct {
	cfg      *config.Config
	verifier TokenVerifier
	mailer   ContactMailer
	limiter  ratelimit.Store // nil when no rate-limit store is configured
}

// NewContactHandler creates a new contact handler. limiter may be nil, in
// which case per-IP throttling is skipped.
func NewContactHandler(cfg *config.Config, verifier TokenVerifier, mailer ContactMailer, limiter ratelimit.Store) *ContactHandler {
	return &ContactHandler{
		cfg:      cfg,
		verifier: verifier,
		mailer:   mailer,
		limiter:  limiter,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Set by the validation middleware
	reqVal, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleError(c, http.StatusInternalServerError, "Contact data not found in context")
		return
	}
	req, ok := reqVal.(*contact.ContactRequest)
	if !ok {
		utils.HandleError(c, http.StatusInternalServerError, "Invalid contact data format")
		return
	}

	ip := utils.GetRealIP(c)

	// Best-effort per-IP throttle. A store failure is logged and ignored so
	// a degraded redis never blocks legitimate submissions.
	if h.limiter != nil && ip != "" {
		limited, err := h.limiter.Hit(c.Request.Context(), ip)
		if err != nil {
			utils.LogError(err, "rate-limit store unavailable")
		} else if limited {
			utils.HandleError(c, http.StatusTooManyRequests, "Too many requests. Try again in a minute.")
			return
		}
	}

	// Operator fault, not caller fault: surface as 500 so a misdeployment
	// is visible without taking the rest of the site down.
	if h.cfg.TurnstileSecretKey == "" {
		utils.HandleError(c, http.StatusInternalServerError, "Server not configured (Turnstile secret missing).")
		return
	}
	if h.cfg.ContactTo == "" || h.cfg.ContactFrom == "" {
		utils.HandleError(c, http.StatusInternalServerError, "Server not configured (email settings missing).")
		return
	}

	verified, err := h.verifier.VerifyToken(req.TurnstileToken, ip)
	if err != nil || !verified {
		utils.HandleErrorWithLog(c, err, http.StatusBadRequest, "Anti-spam check failed. Please try again.")
		return
	}

	email := &service.ContactEmail{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		IP:        ip,
		UserAgent: c.Request.UserAgent(),
		Time:      time.Now().UTC(),
	}

	if err := h.mailer.SendContactEmail(email); err != nil {
		utils.HandleErrorWithLog(c, err, http.StatusBadGateway, "Unable to send right now. Please try again later.")
		return
	}

	utils.HandleOK(c)
}
