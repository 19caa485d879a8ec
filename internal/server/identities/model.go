package identities

import "time"

// Identity is a registered account capable of authenticating.
//
// Password is stored and compared as plaintext. This mirrors the behavior
// the service is contracted to preserve; it is a known weakness and not an
// endorsement.
type Identity struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
}
