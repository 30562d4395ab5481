package account

import (
	"context"
	"database/sql"
	"errors"

	"notes-auth/internal/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, a Account) (Account, error) {

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (username, email, password_digest)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, a.Username, a.Email, a.PasswordDigest).Scan(&id, &a.CreatedAt)

	if err != nil {
		return Account{}, mapConflict(err)
	}

	a.ID = id.String()
	return a, nil
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (Account, error) {
	return s.find(ctx, `
		SELECT id, username, email, password_digest, created_at
		FROM accounts
		WHERE LOWER(username) = LOWER($1)
	`, username)
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (Account, error) {
	// A malformed id cannot match anything; don't let it become a cast
	// error inside postgres.
	if _, err := uuid.Parse(id); err != nil {
		return Account{}, ErrNotFound
	}

	return s.find(ctx, `
		SELECT id, username, email, password_digest, created_at
		FROM accounts
		WHERE id = $1
	`, id)
}

func (s *PostgresStore) find(ctx context.Context, query string, arg any) (Account, error) {

	var (
		a  Account
		id uuid.UUID
	)

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&id,
		&a.Username,
		&a.Email,
		&a.PasswordDigest,
		&a.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}

	a.ID = id.String()
	return a, nil
}

// mapConflict translates a unique-index violation into the typed conflict
// error for the field it guards. The index names come from the accounts
// migration.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}

	switch pqErr.Constraint {
	case "accounts_email_lower_unique":
		return ErrEmailTaken
	default:
		return ErrUsernameTaken
	}
}
