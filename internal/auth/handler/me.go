package handler

import (
	"net/http"

	"notes-auth/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Me returns the account behind the current session. Runs behind the auth
// gate, so the account ID is always in the request context.
func (h *Handler) Me(c *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	acc, err := h.service.AuthenticatedAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acc)
}
