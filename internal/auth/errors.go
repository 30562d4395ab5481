package auth

import "errors"

var (
	// ErrMissingFields is returned when a required signup field is absent.
	// Presence is the only validation performed here; format and strength
	// rules belong to the client.
	ErrMissingFields = errors.New("username, email and password are required")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. The two cases are deliberately indistinguishable so that
	// error responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountGone is returned when a still-valid session references an
	// account that no longer exists. It should not happen under normal
	// operation and is logged as anomalous where it surfaces.
	ErrAccountGone = errors.New("account no longer exists")
)
