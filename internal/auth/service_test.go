package auth

import (
	"context"
	"testing"
	"time"

	"notes-auth/internal/account"
	"notes-auth/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *session.Manager) {
	t.Helper()
	manager := session.NewManager(session.NewMemoryStore(), time.Hour)
	return NewService(account.NewMemoryStore(), manager), manager
}

func TestSignUpIssuesSession(t *testing.T) {
	ctx := context.Background()
	svc, manager := newTestService(t)

	acc, sess, err := svc.SignUp(ctx, "alice", "a@x.com", "p1")
	require.NoError(t, err)

	assert.NotEmpty(t, acc.ID)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, "a@x.com", acc.Email)
	assert.Empty(t, acc.PasswordDigest, "sanitized account must not carry the digest")

	accountID, ok := manager.Resolve(ctx, sess.ID)
	require.True(t, ok)
	assert.Equal(t, acc.ID, accountID)
}

func TestSignUpMissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name                      string
		username, email, password string
	}{
		{"no username", "", "a@x.com", "p1"},
		{"no email", "alice", "", "p1"},
		{"no password", "alice", "a@x.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.SignUp(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestSignUpConflictPropagatesUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, _, err := svc.SignUp(ctx, "alice", "a@x.com", "p1")
	require.NoError(t, err)

	_, _, err = svc.SignUp(ctx, "alice", "b@x.com", "p2")
	assert.ErrorIs(t, err, account.ErrUsernameTaken)

	_, _, err = svc.SignUp(ctx, "bob", "a@x.com", "p2")
	assert.ErrorIs(t, err, account.ErrEmailTaken)
}

func TestLogInRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, manager := newTestService(t)

	created, _, err := svc.SignUp(ctx, "alice", "a@x.com", "p1")
	require.NoError(t, err)

	acc, sess, err := svc.LogIn(ctx, "alice", "p1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, acc.ID)
	assert.Empty(t, acc.PasswordDigest)

	accountID, ok := manager.Resolve(ctx, sess.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, accountID)
}

func TestLogInFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, _, err := svc.SignUp(ctx, "alice", "a@x.com", "p1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.LogIn(ctx, "alice", "wrong")
	_, _, unknownUser := svc.LogIn(ctx, "mallory", "wrong")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogOutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, manager := newTestService(t)

	_, sess, err := svc.SignUp(ctx, "alice", "a@x.com", "p1")
	require.NoError(t, err)

	require.NoError(t, svc.LogOut(ctx, sess.ID))

	_, ok := manager.Resolve(ctx, sess.ID)
	assert.False(t, ok)

	assert.NoError(t, svc.LogOut(ctx, sess.ID))
	assert.NoError(t, svc.LogOut(ctx, "never-issued"))
}

func TestAuthenticatedAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, _, err := svc.SignUp(ctx, "alice", "a@x.com", "p1")
	require.NoError(t, err)

	acc, err := svc.AuthenticatedAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Empty(t, acc.PasswordDigest)

	_, err = svc.AuthenticatedAccount(ctx, "vanished-id")
	assert.ErrorIs(t, err, ErrAccountGone)
}
