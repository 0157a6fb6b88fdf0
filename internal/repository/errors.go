package repository

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// errors.Is and translate them into HTTP responses.
var (
	// ErrNewsNotFound is returned when a query targets a news article
	// that does not exist.
	ErrNewsNotFound = errors.New("news not found")

	// ErrUserNotFound is returned when a user lookup produces an empty
	// result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when an insert violates the unique index
	// on users.email.
	ErrEmailTaken = errors.New("email already in use")

	// ErrUsernameTaken is returned when an insert violates the unique
	// index on users.username.
	ErrUsernameTaken = errors.New("username already in use")
)
