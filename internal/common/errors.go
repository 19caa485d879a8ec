// Package common defines shared sentinel errors used across the layers of
// authgate. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential validation errors, in the order Authenticate checks them.
	ErrMissingCredential = errors.New("missing username or password")
	ErrUnknownUser       = errors.New("unknown user")
	ErrBadPassword       = errors.New("bad password")

	// Token verification errors.
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrTokenExpired   = errors.New("token expired")
)
