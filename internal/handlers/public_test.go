package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"astrodaily/internal/models"
)

func newSignRouter(p *Public) chi.Router {
	r := chi.NewRouter()
	r.Get("/", p.Homepage)
	r.Get("/sign/{sign}", p.SignPage)
	return r
}

func TestHomepageListsAllSigns(t *testing.T) {
	p := NewPublic(testRenderer(t), &stubService{})
	rec := httptest.NewRecorder()

	newSignRouter(p).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, s := range models.AllSigns {
		if !strings.Contains(body, s.Label()) {
			t.Errorf("homepage missing %s", s.Label())
		}
	}
}

func TestSignPageShowsTeaser(t *testing.T) {
	svc := &stubService{record: testRecord(models.SignLeo)}
	p := NewPublic(testRenderer(t), svc)
	rec := httptest.NewRecorder()

	newSignRouter(p).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sign/leo", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "A calm and steady day.") {
		t.Error("teaser missing")
	}
	if strings.Contains(body, "All is well.") {
		t.Error("full reading shown to an unauthenticated visitor")
	}
}

func TestSignPageShowsFullReadingWhenAuthenticated(t *testing.T) {
	svc := &stubService{record: testRecord(models.SignLeo)}
	p := NewPublic(testRenderer(t), svc)
	rec := httptest.NewRecorder()

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/sign/leo", nil))
	newSignRouter(p).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "All is well.") {
		t.Error("full reading missing for a signed-in reader")
	}
	// The markdown heading should be rendered as HTML, not shown raw.
	if strings.Contains(body, "## General") {
		t.Error("markdown not rendered")
	}
	if !strings.Contains(body, "General") {
		t.Error("section heading missing")
	}
}

func TestSignPageUnknownSignRedirects(t *testing.T) {
	p := NewPublic(testRenderer(t), &stubService{})
	rec := httptest.NewRecorder()

	newSignRouter(p).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sign/unicorn", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
}

func TestSignPageServiceError(t *testing.T) {
	svc := &stubService{err: errors.New("model unavailable")}
	p := NewPublic(testRenderer(t), svc)
	rec := httptest.NewRecorder()

	newSignRouter(p).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sign/leo", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
}
