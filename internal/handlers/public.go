// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"astrodaily/internal/markdown"
	"astrodaily/internal/middleware"
	"astrodaily/internal/models"
	"astrodaily/internal/render"
)

// Public groups the server-rendered site pages.
type Public struct {
	renderer *render.Renderer
	svc      HoroscopeService
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, svc HoroscopeService) *Public {
	return &Public{renderer: renderer, svc: svc}
}

// signOption is one entry in the homepage sign picker.
type signOption struct {
	Value models.Sign
	Label string
}

// Homepage renders the sign picker.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	signs := make([]signOption, 0, len(models.AllSigns))
	for _, s := range models.AllSigns {
		signs = append(signs, signOption{Value: s, Label: s.Label()})
	}

	p.renderer.Page(w, r, "home", &render.PageData{
		Title: "Daily horoscopes",
		Data:  map[string]any{"Signs": signs},
	})
}

// SignPage renders today's reading for one sign. The teaser is always
// shown; the full reading appears only for signed-in readers, mirroring
// the API's gating. An unknown sign redirects to the picker.
func (p *Public) SignPage(w http.ResponseWriter, r *http.Request) {
	sign, ok := models.ParseSign(chi.URLParam(r, "sign"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	date := models.Today()

	h, err := p.svc.FetchOrCreate(r.Context(), sign, date)
	if err != nil {
		slog.Error("render sign page failed", "sign", sign, "date", date, "error", err)
		http.Error(w, "Something went wrong preparing today's reading.", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"SignLabel": sign.Label(),
		"Date":      h.Date,
		"ShortText": h.ShortText,
	}

	if middleware.IsAuthenticated(r.Context()) {
		longHTML, err := markdown.ToHTML(h.LongText)
		if err != nil {
			slog.Error("render long text failed", "sign", sign, "error", err)
			http.Error(w, "Something went wrong preparing today's reading.", http.StatusInternalServerError)
			return
		}
		data["LongHTML"] = template.HTML(longHTML)
	}

	p.renderer.Page(w, r, "sign", &render.PageData{
		Title: sign.Label(),
		Data:  data,
	})
}
