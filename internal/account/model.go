package account

import "time"

// Account is a persisted identity record. The digest never leaves the
// server: it is excluded from JSON and stripped by Sanitized before the
// auth service hands the account to any caller.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Sanitized returns a copy safe to return to clients.
func (a Account) Sanitized() Account {
	a.PasswordDigest = ""
	return a
}
