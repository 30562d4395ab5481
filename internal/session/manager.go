package session

import (
	"context"
	"log/slog"
	"time"
)

// Manager owns the session lifecycle: it issues tokens, resolves them
// back to account IDs, and invalidates them. All failure modes of Resolve
// collapse to "no session" so callers treat a missing, malformed, expired,
// or unreadable session exactly like never having logged in.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager wraps a Store with the configured absolute session lifetime.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Issue creates and persists a new session for the account.
func (m *Manager) Issue(ctx context.Context, accountID string) (Session, error) {
	id, err := GenerateID()
	if err != nil {
		return Session{}, err
	}

	now := time.Now()
	s := Session{
		ID:        id,
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Create(ctx, s); err != nil {
		return Session{}, err
	}

	return s, nil
}

// Resolve maps a token to the account it belongs to. It never returns an
// error: store failures are logged and reported as "no session", and an
// expired record is deleted on access before being reported the same way.
func (m *Manager) Resolve(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		slog.ErrorContext(ctx, "session lookup failed", "error", err)
		return "", false
	}
	if s == nil {
		return "", false
	}

	if s.Expired(time.Now()) {
		// lazy eviction
		if err := m.store.Delete(ctx, token); err != nil {
			slog.WarnContext(ctx, "expired session cleanup failed", "error", err)
		}
		return "", false
	}

	return s.AccountID, true
}

// Invalidate terminates a session. Idempotent: unknown or already-invalid
// tokens are a no-op.
func (m *Manager) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// TTL returns the configured absolute session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
