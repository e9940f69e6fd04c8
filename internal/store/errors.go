package store

import "errors"

var (
	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("invalid session input")

	// ErrNotFound covers both "no such record" and "record owned by
	// someone else". The two are deliberately indistinguishable so
	// that non-owners cannot probe for existence.
	ErrNotFound = errors.New("session not found")
)
