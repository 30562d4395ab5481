package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"notes-auth/internal/account"
	"notes-auth/internal/auth"
	"notes-auth/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    *auth.Service
	limiter    *auth.LoginLimiter
	cookieOpts session.CookieOptions
}

func NewHandler(
	service *auth.Service,
	limiter *auth.LoginLimiter,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		service:    service,
		limiter:    limiter,
		cookieOpts: cookieOpts,
	}
}

// RegisterRoutes wires the auth endpoints. Only GET / sits behind the
// gate; signup, login, and logout must stay reachable anonymously.
func (h *Handler) RegisterRoutes(r *gin.Engine, gate gin.HandlerFunc) {
	r.POST("/signup", h.SignUp)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/", gate, h.Me)
}

// respondError is the single place where the core error taxonomy becomes
// HTTP status codes. The core never writes responses itself.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrUsernameTaken),
		errors.Is(err, account.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrAccountGone):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		// transient store errors and everything else stay opaque
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// dropPriorSession enforces single-session-per-cookie-slot: issuing a new
// session for a client that already holds one invalidates the old record
// first.
func (h *Handler) dropPriorSession(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return
	}
	if err := h.service.LogOut(c.Request.Context(), cookie.Value); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to invalidate prior session", "error", err)
	}
}
