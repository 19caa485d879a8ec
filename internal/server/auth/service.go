package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/config"
	"github.com/dmitrijs2005/authgate/internal/server/identities"
)

// Service validates credentials against the identity repository and issues
// and verifies signed tokens. It holds no per-request state: the secret and
// token lifetime are fixed at construction, so concurrent use needs no
// coordination.
type Service struct {
	identities            identities.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	now                   func() time.Time
}

// NewService constructs a Service using the identity repository and server
// config. The signing secret is taken once at construction and never read
// from ambient state afterwards.
func NewService(repo identities.Repository, cfg *config.Config) *Service {
	return &Service{
		identities:            repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		now:                   time.Now,
	}
}

// WithClock replaces the service clock. Tests use it to make token expiry
// deterministic.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Authenticate validates a decoded credential against the identity store.
//
// Error cases, checked in order:
//   - nil credential or an empty username/password: common.ErrMissingCredential
//   - no identity with that username: common.ErrUnknownUser
//   - password mismatch: common.ErrBadPassword
//
// On success the matched identity is returned.
func (s *Service) Authenticate(ctx context.Context, cred *Credential) (*identities.Identity, error) {
	if cred == nil || cred.Username == "" || cred.Password == "" {
		return nil, common.ErrMissingCredential
	}

	identity, err := s.identities.FindByUsername(ctx, cred.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownUser
		}
		return nil, common.ErrorInternal
	}

	if !s.checkPassword(identity.Password, cred.Password) {
		return nil, common.ErrBadPassword
	}

	return identity, nil
}

// IssueToken mints a signed token bound to the identity id, expiring
// tokenValidityDuration from now.
func (s *Service) IssueToken(identity *identities.Identity) (string, error) {
	return GenerateToken(identity.ID, s.jwtSecret, s.tokenValidityDuration, s.now)
}

// VerifyToken checks the signature and expiry of a presented token and
// returns its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	return ParseToken(tokenString, s.jwtSecret, s.now)
}

// ListIdentities exposes the identity listing for authorized callers.
func (s *Service) ListIdentities(ctx context.Context) ([]*identities.Identity, error) {
	return s.identities.List(ctx)
}

func (s *Service) checkPassword(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
