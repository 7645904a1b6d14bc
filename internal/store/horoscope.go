// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all Astrodaily
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"astrodaily/internal/models"
)

// ErrDuplicate signals that an insert hit the unique constraint on
// (sign, date). Callers match it with errors.Is and resolve the race by
// re-reading; it is never surfaced to API clients directly.
var ErrDuplicate = errors.New("store: duplicate horoscope for sign and date")

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// HoroscopeStore handles all horoscope-related database operations.
type HoroscopeStore struct {
	db *sql.DB
}

// NewHoroscopeStore creates a new HoroscopeStore with the given database connection.
func NewHoroscopeStore(db *sql.DB) *HoroscopeStore {
	return &HoroscopeStore{db: db}
}

// FindBySignDate retrieves the horoscope for a (sign, date) pair.
// Returns nil if no record exists; not-found is not an error.
func (s *HoroscopeStore) FindBySignDate(sign models.Sign, date string) (*models.Horoscope, error) {
	h := &models.Horoscope{}
	err := s.db.QueryRow(`
		SELECT id, sign, date, short_text, long_text, created_at
		FROM horoscopes WHERE sign = $1 AND date = $2
	`, sign, date).Scan(
		&h.ID, &h.Sign, &h.Date, &h.ShortText, &h.LongText, &h.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find horoscope: %w", err)
	}
	return h, nil
}

// Insert persists a new horoscope and returns it with the generated ID.
// A unique-constraint violation on (sign, date) is reported as ErrDuplicate
// so the caller can distinguish a lost insert race from a real failure.
func (s *HoroscopeStore) Insert(h *models.Horoscope) (*models.Horoscope, error) {
	result := &models.Horoscope{}
	err := s.db.QueryRow(`
		INSERT INTO horoscopes (sign, date, short_text, long_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sign, date, short_text, long_text, created_at
	`, h.Sign, h.Date, h.ShortText, h.LongText).Scan(
		&result.ID, &result.Sign, &result.Date,
		&result.ShortText, &result.LongText, &result.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("insert horoscope %s/%s: %w", h.Sign, h.Date, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert horoscope: %w", err)
	}
	return result, nil
}

// CountByDate returns the number of horoscopes generated for a given date.
// At most 12 per date; the unique (sign, date) constraint caps it.
func (s *HoroscopeStore) CountByDate(date string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM horoscopes WHERE date = $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count horoscopes: %w", err)
	}
	return count, nil
}
