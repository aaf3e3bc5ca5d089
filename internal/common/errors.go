// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these
// values, or KindOf to classify an arbitrary error.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential errors. Both login failure paths share ErrorInvalidCredentials.
	ErrorDuplicateEmail     = errors.New("duplicate email")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorPasswordTooLong    = errors.New("password too long")

	ErrorValidation    = errors.New("validation error")
	ErrorPoolExhausted = errors.New("connection pool exhausted")
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindNotFound
	KindDuplicateEmail
	KindInvalidCredentials
	KindPoolExhausted
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFound"
	case KindDuplicateEmail:
		return "DuplicateEmail"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	case KindPoolExhausted:
		return "PoolExhausted"
	default:
		return "StoreError"
	}
}

// KindOf maps err onto the error taxonomy. Anything unrecognised is a store error.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrorValidation), errors.Is(err, ErrorPasswordTooLong):
		return KindValidation
	case errors.Is(err, ErrorNotFound):
		return KindNotFound
	case errors.Is(err, ErrorDuplicateEmail):
		return KindDuplicateEmail
	case errors.Is(err, ErrorInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrorPoolExhausted):
		return KindPoolExhausted
	default:
		return KindStore
	}
}
