package handler

import (
	"errors"
	"net/http"
	"strconv"

	"notes-auth/internal/auth"
	"notes-auth/internal/metrics"
	"notes-auth/internal/session"

	"github.com/gin-gonic/gin"
)

type logInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req logInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ip := c.ClientIP()
	if retryAfter := h.limiter.RetryAfter(ip); retryAfter > 0 {
		c.Header("Retry-After", strconv.FormatInt(int64(retryAfter.Seconds()), 10))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many failed attempts"})
		return
	}

	acc, sess, err := h.service.LogIn(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.limiter.RecordFailure(ip)
			metrics.Logins.WithLabelValues(metrics.OutcomeRejected).Inc()
		} else {
			metrics.Logins.WithLabelValues(metrics.OutcomeError).Inc()
		}
		respondError(c, err)
		return
	}

	h.limiter.Reset(ip)
	metrics.Logins.WithLabelValues(metrics.OutcomeOK).Inc()

	h.dropPriorSession(c)
	session.SetCookie(c.Writer, sess.ID, sess.ExpiresAt, h.cookieOpts)

	c.JSON(http.StatusOK, acc)
}
