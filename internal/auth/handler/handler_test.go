package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notes-auth/internal/account"
	"notes-auth/internal/auth"
	"notes-auth/internal/middleware"
	"notes-auth/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, ttl time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := session.NewManager(session.NewMemoryStore(), ttl)
	service := auth.NewService(account.NewMemoryStore(), manager)

	h := NewHandler(service, auth.NewLoginLimiter(), session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	router := gin.New()
	h.RegisterRoutes(router, middleware.GinRequireAuth(middleware.NewAuthMiddleware(manager)))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("response carries no session cookie")
	return nil
}

func TestAuthEndToEnd(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	// signup succeeds
	rec := doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "alice", created["username"])
	assert.Equal(t, "a@x.com", created["email"])
	assert.NotContains(t, rec.Body.String(), "digest")

	// same username again conflicts
	rec = doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "alice", "email": "b@x.com", "password": "p2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username")

	// wrong password is unauthorized
	rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// correct password logs in and sets the cookie
	rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
		"username": "alice", "password": "p1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)

	// the cookie authorizes GET /
	rec = doJSON(t, router, http.MethodGet, "/", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")

	// logout invalidates the session
	rec = doJSON(t, router, http.MethodPost, "/logout", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignUpValidation(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing username", gin.H{"email": "a@x.com", "password": "p1"}},
		{"missing email", gin.H{"username": "alice", "password": "p1"}},
		{"missing password", gin.H{"username": "alice", "email": "a@x.com"}},
		{"empty body", gin.H{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignUpEmailConflict(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "bob", "email": "A@X.COM", "password": "p2",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestLoginEnumerationResistance(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := doJSON(t, router, http.MethodPost, "/login", gin.H{
		"username": "alice", "password": "wrong",
	})
	unknownUser := doJSON(t, router, http.MethodPost, "/login", gin.H{
		"username": "mallory", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLoginThrottling(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for i := 0; i < 5; i++ {
		rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
			"username": "alice", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
		"username": "alice", "password": "p1",
	})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestLogoutWithoutSessionIsNoOp(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestExpiredSessionRejectedAtGate(t *testing.T) {
	router := newTestRouter(t, 0)

	rec := doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = doJSON(t, router, http.MethodGet, "/", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginReplacesPriorSession(t *testing.T) {
	router := newTestRouter(t, time.Hour)

	rec := doJSON(t, router, http.MethodPost, "/signup", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	first := sessionCookie(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/login", gin.H{
		"username": "alice", "password": "p1",
	}, first)
	require.Equal(t, http.StatusOK, rec.Code)
	second := sessionCookie(t, rec)
	require.NotEqual(t, first.Value, second.Value)

	// old cookie slot no longer authorizes
	rec = doJSON(t, router, http.MethodGet, "/", nil, first)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/", nil, second)
	assert.Equal(t, http.StatusOK, rec.Code)
}
