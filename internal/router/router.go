// Package router sets up all HTTP routes and middleware chains for the
// Astrodaily server. It wires the JSON API, the public pages, and the
// magic-link login flow.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"astrodaily/internal/handlers"
	"astrodaily/internal/middleware"
	"astrodaily/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, api *handlers.API, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check.
	r.Get("/health", healthHandler)

	// JSON API. Authentication only widens the response; it is never
	// required to call the endpoint.
	r.Get("/api/horoscope", api.Horoscope)

	// Login flow. CSRF protects the form posts.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Get("/auth/verify", auth.Verify)
		r.Post("/logout", auth.Logout)
	})

	// Public pages.
	r.Get("/", public.Homepage)
	r.Get("/sign/{sign}", public.SignPage)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
