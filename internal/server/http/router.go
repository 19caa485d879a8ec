package http

import (
	"net/http"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs the HTTP handler for the authgate API.
//
// Routes:
//
//	POST /auth/login  → authHandler.Login (public)
//	GET  /auth/users  → authHandler.Users (token required)
func NewRouter(authHandler *AuthHandler, service AuthService, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(WithRequestLogging(logger))
	r.Use(chiMiddleware.Throttle(300))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		// Protected group: requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(Authenticator(service))
			r.Get("/users", authHandler.Users)
		})
	})

	return r
}
