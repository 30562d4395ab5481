package handler

import (
	"net/http"

	"notes-auth/internal/session"

	"github.com/gin-gonic/gin"
)

// Logout always answers 204: logging out without a session is a no-op,
// not an error.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// best-effort; the cookie is cleared regardless
		_ = h.service.LogOut(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	c.Status(http.StatusNoContent)
}
