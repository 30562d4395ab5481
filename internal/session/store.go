package session

import (
	"context"
	"time"
)

// Session binds an opaque token (its ID) to an account. It carries only
// identity pointers, never account data: the cookie holds the ID and
// nothing else.
type Session struct {
	ID        string    `json:"session_id"`
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now. A
// zero-duration session (ExpiresAt == CreatedAt) is expired immediately.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store defines how session records are persisted. Implementations must
// treat an unknown ID as (nil, nil) on Get and as a no-op on Delete;
// "missing" is a normal outcome, not an error.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
