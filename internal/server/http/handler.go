// Package http exposes the authentication service over HTTP: the login
// handshake, the token-guarded identity listing, and the middleware that
// maps token verification onto 401/403 responses.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/identities"
)

// AuthService defines the authentication operations required by the HTTP
// handlers.
type AuthService interface {
	// Authenticate validates a decoded credential against the identity store.
	Authenticate(ctx context.Context, cred *auth.Credential) (*identities.Identity, error)
	// IssueToken mints a signed token for an authenticated identity.
	IssueToken(identity *identities.Identity) (string, error)
	// VerifyToken checks a presented token and returns its claims.
	VerifyToken(token string) (*auth.Claims, error)
	// ListIdentities returns all registered identities.
	ListIdentities(ctx context.Context) ([]*identities.Identity, error)
}

// AuthHandler handles HTTP requests for login and the protected identity
// listing.
type AuthHandler struct {
	service AuthService
	logger  logging.Logger
}

func NewAuthHandler(service AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With("module", "http_handler"),
	}
}

// LoginResponse is the JSON body returned on successful login.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// IdentityResponse is one entry of the identity listing. Passwords never
// leave the server.
type IdentityResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// Login authenticates the credential encoded in the Authorization header
// and returns a signed token.
//
// Status mapping: missing or undecodable header and empty credential fields
// are 401 (not authenticated); a wrong username or password is 403.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	headerValue := r.Header.Get("Authorization")
	if headerValue == "" {
		writeError(w, http.StatusUnauthorized, "No authentication header")
		return
	}

	cred := auth.DecodeCredential(headerValue)
	if cred == nil {
		writeError(w, http.StatusUnauthorized, "No authentication header")
		return
	}

	identity, err := h.service.Authenticate(r.Context(), cred)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingCredential):
			writeError(w, http.StatusUnauthorized, "No username or password")
		case errors.Is(err, common.ErrUnknownUser):
			writeError(w, http.StatusForbidden, "Wrong username")
		case errors.Is(err, common.ErrBadPassword):
			writeError(w, http.StatusForbidden, "Wrong password")
		default:
			h.logger.Error(r.Context(), "authenticate failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	token, err := h.service.IssueToken(identity)
	if err != nil {
		h.logger.Error(r.Context(), "token issue failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	h.logger.Info(r.Context(), "login successful", "username", identity.Username)
	writeJSON(w, http.StatusOK, LoginResponse{
		Msg:   "The login was successful!",
		Token: token,
	})
}

// Users returns the identity listing. The Authenticator middleware has
// already verified the caller's token.
func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListIdentities(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "identity listing failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	result := make([]IdentityResponse, 0, len(list))
	for _, identity := range list {
		result = append(result, IdentityResponse{
			Username: identity.Username,
			ID:       identity.ID,
		})
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
