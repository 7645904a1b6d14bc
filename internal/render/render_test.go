package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"astrodaily/internal/session"
)

func TestNewParsesAllTemplates(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, name := range []string{"home", "sign", "login", "login_sent"} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
	if _, ok := r.templates["base"]; ok {
		t.Error("base layout registered as a page")
	}
}

func TestPageRendersWithLayout(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	r.Page(rec, req, "login", &PageData{Title: "Sign in"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<title>Sign in") {
		t.Errorf("title missing from layout:\n%s", body)
	}
	if !strings.Contains(body, `name="email"`) {
		t.Errorf("login form missing from body")
	}
}

func TestPageInjectsSession(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Page(rec, req, "home", &PageData{
		Title:   "Astrodaily",
		Session: &session.Data{Email: "reader@example.com", DisplayName: "Reader"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Reader") {
		t.Errorf("signed-in state missing from layout")
	}
}

func TestPageUnknownTemplate(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	r.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil), "nope", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}
