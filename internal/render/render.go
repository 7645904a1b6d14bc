// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site:
// the sign picker, the daily reading page, and the login flow.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"astrodaily/internal/middleware"
	"astrodaily/internal/session"
)

//go:embed templates/*.html
var pagesFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Session   *session.Data  // Current reader session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms
	Data      map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
	}

	entries, err := pagesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")

		tmpl, parseErr := template.New("base.html").ParseFS(
			pagesFS, "templates/base.html", "templates/"+name,
		)
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full site page using the base layout. Session and CSRF
// token are injected from the request so templates can show login state
// and protect their forms.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}
	if data.CSRFToken == "" {
		data.CSRFToken = middleware.GetCSRFToken(r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := executeTemplate(w, tmpl, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
