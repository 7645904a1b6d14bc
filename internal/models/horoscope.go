// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the calendar-date layout used for the horoscope cache key.
const DateFormat = "2006-01-02"

// Horoscope is one generated daily reading for a (sign, date) pair.
// Records are immutable once inserted: they are never updated or deleted,
// and the database enforces at most one record per (sign, date).
type Horoscope struct {
	ID        uuid.UUID `json:"-"`
	Sign      Sign      `json:"sign"`
	Date      string    `json:"date"` // YYYY-MM-DD, server-local
	ShortText string    `json:"short_text"`
	LongText  string    `json:"long_text"`
	CreatedAt time.Time `json:"-"`
}

// Today returns the server's local calendar date in YYYY-MM-DD form.
// This is the freshness key: horoscopes roll over at local midnight.
func Today() string {
	return time.Now().Format(DateFormat)
}
