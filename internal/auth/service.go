package auth

import (
	"context"
	"errors"
	"log/slog"

	"notes-auth/internal/account"
	"notes-auth/internal/auth/credentials"
	"notes-auth/internal/session"
)

// Service orchestrates the signup, login, and logout state transitions.
// Per client cookie slot the state machine is Anonymous -> Authenticated
// -> Anonymous, looping via logout or session expiry.
type Service struct {
	accounts account.Store
	sessions *session.Manager
}

func NewService(accounts account.Store, sessions *session.Manager) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
	}
}

// SignUp creates an account and logs it in. Uniqueness conflicts from the
// store propagate unchanged; they are not transient and must not be
// retried.
func (s *Service) SignUp(
	ctx context.Context,
	username string,
	email string,
	password string,
) (account.Account, session.Session, error) {

	if username == "" || email == "" || password == "" {
		return account.Account{}, session.Session{}, ErrMissingFields
	}

	digest, err := credentials.Hash(password)
	if err != nil {
		return account.Account{}, session.Session{}, err
	}

	acc, err := s.accounts.Create(ctx, account.Account{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
	})
	if err != nil {
		return account.Account{}, session.Session{}, err
	}

	sess, err := s.sessions.Issue(ctx, acc.ID)
	if err != nil {
		return account.Account{}, session.Session{}, err
	}

	slog.InfoContext(ctx, "account created",
		"account_id", acc.ID,
		"username", acc.Username,
	)

	return acc.Sanitized(), sess, nil
}

// LogIn verifies credentials and issues a session. An unknown username
// still pays for a digest verification against a dummy digest so that
// response time does not reveal whether the account exists.
func (s *Service) LogIn(
	ctx context.Context,
	username string,
	password string,
) (account.Account, session.Session, error) {

	acc, err := s.accounts.FindByUsername(ctx, username)

	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			credentials.Verify(password, credentials.DummyDigest)
			return account.Account{}, session.Session{}, ErrInvalidCredentials
		}
		return account.Account{}, session.Session{}, err
	}

	if !credentials.Verify(password, acc.PasswordDigest) {
		return account.Account{}, session.Session{}, ErrInvalidCredentials
	}

	sess, err := s.sessions.Issue(ctx, acc.ID)
	if err != nil {
		return account.Account{}, session.Session{}, err
	}

	slog.InfoContext(ctx, "login succeeded",
		"account_id", acc.ID,
		"session_id", sess.ID,
	)

	return acc.Sanitized(), sess, nil
}

// LogOut invalidates the session. Always succeeds: an unknown or already
// invalidated token is a no-op.
func (s *Service) LogOut(ctx context.Context, token string) error {
	return s.sessions.Invalidate(ctx, token)
}

// AuthenticatedAccount loads the account behind an already-authorized
// request. A vanished account yields ErrAccountGone rather than crashing
// the gate's callers.
func (s *Service) AuthenticatedAccount(ctx context.Context, accountID string) (account.Account, error) {
	acc, err := s.accounts.FindByID(ctx, accountID)

	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			slog.WarnContext(ctx, "valid session references missing account",
				"account_id", accountID,
			)
			return account.Account{}, ErrAccountGone
		}
		return account.Account{}, err
	}

	return acc.Sanitized(), nil
}
