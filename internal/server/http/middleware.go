package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFromContext returns the verified token claims stored by the
// Authenticator middleware.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

const bearerScheme = "Bearer "

// Authenticator guards a route group with token verification. An absent
// Authorization header is 401; a token that fails verification (malformed,
// bad signature, or expired) is 403. A "Bearer " scheme prefix is accepted
// and stripped.
func Authenticator(service AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headerValue := r.Header.Get("Authorization")
			if headerValue == "" {
				writeError(w, http.StatusUnauthorized, "No token")
				return
			}

			token := headerValue
			if len(token) >= len(bearerScheme) && strings.EqualFold(token[:len(bearerScheme)], bearerScheme) {
				token = token[len(bearerScheme):]
			}

			claims, err := service.VerifyToken(token)
			if err != nil {
				writeError(w, http.StatusForbidden, "Not a valid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithRequestLogging logs each request with its method, path, status, and
// duration.
func WithRequestLogging(logger logging.Logger) func(http.Handler) http.Handler {
	log := logger.With("module", "http_server")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info(r.Context(), "request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
			)
		})
	}
}
