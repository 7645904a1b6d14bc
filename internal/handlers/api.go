// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the JSON API, the
// public site pages, and the magic-link login flow.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"astrodaily/internal/middleware"
	"astrodaily/internal/models"
)

// invalidSignMessage is the error payload for a missing or unknown sign.
const invalidSignMessage = "Invalid sign. Choose one of the 12 zodiac signs."

// HoroscopeService is the fetch-or-create operation the API depends on.
// Satisfied by *horoscope.Service.
type HoroscopeService interface {
	FetchOrCreate(ctx context.Context, sign models.Sign, date string) (*models.Horoscope, error)
}

// API groups the JSON API handlers.
type API struct {
	svc HoroscopeService
}

// NewAPI creates a new API handler group.
func NewAPI(svc HoroscopeService) *API {
	return &API{svc: svc}
}

// horoscopeResponse is the API payload. LongText is only populated for
// authenticated callers; omitempty keeps the field out entirely otherwise.
type horoscopeResponse struct {
	Sign      models.Sign `json:"sign"`
	Date      string      `json:"date"`
	ShortText string      `json:"short_text"`
	LongText  string      `json:"long_text,omitempty"`
}

// assembleResponse trims a record down to what the caller may see.
// The teaser is always included; the full reading is gated on the
// authentication verdict.
func assembleResponse(h *models.Horoscope, authenticated bool) horoscopeResponse {
	resp := horoscopeResponse{
		Sign:      h.Sign,
		Date:      h.Date,
		ShortText: h.ShortText,
	}
	if authenticated {
		resp.LongText = h.LongText
	}
	return resp
}

// Horoscope serves GET /api/horoscope?sign=<sign>. The sign is validated
// before any store or generator work happens; the date is the server's
// local calendar date, computed once per request.
func (a *API) Horoscope(w http.ResponseWriter, r *http.Request) {
	sign, ok := models.ParseSign(r.URL.Query().Get("sign"))
	if !ok {
		writeJSONError(w, http.StatusBadRequest, invalidSignMessage)
		return
	}

	date := models.Today()

	h, err := a.svc.FetchOrCreate(r.Context(), sign, date)
	if err != nil {
		slog.Error("fetch or create horoscope failed", "sign", sign, "date", date, "error", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	authed := middleware.IsAuthenticated(r.Context())
	writeJSON(w, http.StatusOK, assembleResponse(h, authed))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

// writeJSONError writes an {"error": message} payload.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
