package account

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no account matches the lookup key.
	ErrNotFound = errors.New("account not found")

	// Conflict errors carry the human-readable message shown inline by
	// the client. Uniqueness conflicts are never transient; callers must
	// not retry.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

// Store persists account records and enforces username/email uniqueness.
// Matching is case-insensitive for both keys; values are stored as given.
// There are no update or delete operations: accounts are created exactly
// once and never mutated here.
type Store interface {
	// Create persists a new account and assigns its ID. It is atomic:
	// on ErrUsernameTaken/ErrEmailTaken nothing is persisted, and of two
	// concurrent conflicting creates exactly one succeeds.
	Create(ctx context.Context, a Account) (Account, error)

	FindByUsername(ctx context.Context, username string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
}
