// Package auth implements the bearer-token authentication core: decoding
// login credentials from an authorization header, validating them against a
// registered identity, and issuing and verifying signed, time-bound tokens.
package auth

import (
	"encoding/base64"
	"strings"
)

// Credential is a transient username/password pair decoded from a login
// request header. It is compared against a stored identity and discarded.
type Credential struct {
	Username string
	Password string
}

const basicScheme = "Basic "

// DecodeCredential parses the raw value of an authorization-style header
// that encodes "username:password" in standard base64, with an optional
// "Basic " scheme prefix. The split happens on the first ':' so passwords
// may themselves contain colons.
//
// It returns nil when the value is empty, not valid base64, or contains no
// separator. A nil result means "unauthenticated", never a fault.
func DecodeCredential(headerValue string) *Credential {
	if headerValue == "" {
		return nil
	}

	encoded := strings.TrimSpace(headerValue)
	if len(encoded) >= len(basicScheme) && strings.EqualFold(encoded[:len(basicScheme)], basicScheme) {
		encoded = encoded[len(basicScheme):]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	username, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return nil
	}

	return &Credential{Username: username, Password: password}
}
