package handler

import (
	"errors"
	"net/http"

	"notes-auth/internal/account"
	"notes-auth/internal/metrics"
	"notes-auth/internal/session"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	acc, sess, err := h.service.SignUp(
		c.Request.Context(),
		req.Username,
		req.Email,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) || errors.Is(err, account.ErrEmailTaken) {
			metrics.Signups.WithLabelValues(metrics.OutcomeConflict).Inc()
		} else {
			metrics.Signups.WithLabelValues(metrics.OutcomeError).Inc()
		}
		respondError(c, err)
		return
	}

	metrics.Signups.WithLabelValues(metrics.OutcomeOK).Inc()

	h.dropPriorSession(c)
	session.SetCookie(c.Writer, sess.ID, sess.ExpiresAt, h.cookieOpts)

	c.JSON(http.StatusCreated, acc)
}
