// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/mail"
	"net/url"

	"astrodaily/internal/auth"
	"astrodaily/internal/middleware"
	"astrodaily/internal/render"
	"astrodaily/internal/session"
	"astrodaily/internal/store"
)

// Auth groups the magic-link login handlers.
type Auth struct {
	renderer  *render.Renderer
	sessions  *session.Store
	tokens    *auth.TokenStore
	mailer    *auth.Mailer
	userStore *store.UserStore
	publicURL string
}

// NewAuth creates a new Auth handler group. publicURL is the external
// base URL used when building magic links.
func NewAuth(renderer *render.Renderer, sessions *session.Store, tokens *auth.TokenStore, mailer *auth.Mailer, userStore *store.UserStore, publicURL string) *Auth {
	return &Auth{
		renderer:  renderer,
		sessions:  sessions,
		tokens:    tokens,
		mailer:    mailer,
		userStore: userStore,
		publicURL: publicURL,
	}
}

// LoginPage renders the email form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: nothing to do here.
	if middleware.IsAuthenticated(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign in",
	})
}

// LoginSubmit issues a magic link for the submitted address. The response
// is the same whether or not the address maps to an account, so the form
// cannot be used to probe for registered emails.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if _, err := mail.ParseAddress(email); err != nil {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign in",
			Data:  map[string]any{"Error": "Please enter a valid email address."},
		})
		return
	}

	token, err := a.tokens.Issue(r.Context(), email)
	if err != nil {
		slog.Error("issue login token failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	link := a.publicURL + "/auth/verify?token=" + url.QueryEscape(token)
	if err := a.mailer.SendLoginLink(email, link); err != nil {
		slog.Error("send magic link failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "login_sent", &render.PageData{
		Title: "Check your inbox",
		Data:  map[string]any{"Email": email},
	})
}

// Verify consumes a magic-link token, creates the account on first login,
// starts a session, and sends the reader back to the homepage.
func (a *Auth) Verify(w http.ResponseWriter, r *http.Request) {
	email, err := a.tokens.Consume(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		// Invalid, expired, and already-used all look the same to the user.
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign in",
			Data:  map[string]any{"Error": "That link is invalid or has expired. Request a new one."},
		})
		return
	}

	user, err := a.userStore.FindOrCreateByEmail(email)
	if err != nil {
		slog.Error("find or create user failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the homepage.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
