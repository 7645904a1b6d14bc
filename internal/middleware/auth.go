// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"astrodaily/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for the session data.
	SessionKey contextKey = "session"
)

// LoadSession retrieves the session from Valkey and stores it in the
// request context. Downstream handlers access it via SessionFromCtx().
// This middleware does NOT enforce authentication: content gating treats
// a missing session as an unauthenticated caller, never as an error.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				// Treat a session-store failure as unauthenticated.
				next.ServeHTTP(w, r)
				return
			}

			if data != nil {
				ctx := context.WithValue(r.Context(), SessionKey, data)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded (caller is not authenticated).
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}

// IsAuthenticated reports whether the request context carries a session.
// This boolean is the access-gate verdict for the long-form reading.
func IsAuthenticated(ctx context.Context) bool {
	return SessionFromCtx(ctx) != nil
}
