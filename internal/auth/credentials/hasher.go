package credentials

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// DummyDigest is a throwaway bcrypt digest verified against when a login
// targets an unknown username, so that the response time does not reveal
// whether the account exists. It is the digest of no credential in use.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash derives a salted bcrypt digest from a plaintext password. Two calls
// with the same input produce different digests; the plaintext is never
// retained.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Verify reports whether the plaintext matches the stored digest. bcrypt's
// comparison is constant-time, and a malformed digest simply fails to
// match; Verify never panics or returns an error.
func Verify(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword(
		[]byte(digest),
		[]byte(password),
	) == nil
}
