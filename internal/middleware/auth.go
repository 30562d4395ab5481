package middleware

import (
	"context"
	"net/http"

	"notes-auth/internal/metrics"
	"notes-auth/internal/session"
)

// unexported, collision-proof context key
type accountIDContextKeyType struct{}

var accountIDKey = accountIDContextKeyType{}

// AccountIDFromContext extracts the authenticated account ID from context.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

// AuthMiddleware is the authorization gate for protected routes. It does
// no business logic: it only resolves the session cookie and either
// attaches the account ID to the request context or short-circuits with
// 401. Absence and invalidity of the cookie are treated identically.
type AuthMiddleware struct {
	Sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			reject(w)
			return
		}

		// 2. Resolve token; expiry and store failures collapse to
		// "no session" inside the manager
		accountID, ok := a.Sessions.Resolve(r.Context(), cookie.Value)
		if !ok {
			reject(w)
			return
		}

		// 3. Attach account id to context
		ctx := context.WithValue(r.Context(), accountIDKey, accountID)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func reject(w http.ResponseWriter) {
	metrics.GateRejections.Inc()
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
