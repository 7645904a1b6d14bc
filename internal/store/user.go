// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"astrodaily/internal/models"
)

// UserStore handles all user-related database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail retrieves a user by their email address. Returns nil if not found.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, email, display_name, created_at, updated_at
		FROM users WHERE email = $1
	`, normalizeEmail(email)).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by their UUID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, email, display_name, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindOrCreateByEmail returns the account for an email address, creating
// it on first login. The display name defaults to the local part of the
// address. Concurrent first logins for the same email are resolved by the
// unique constraint plus ON CONFLICT, so both callers get the same row.
func (s *UserStore) FindOrCreateByEmail(email string) (*models.User, error) {
	email = normalizeEmail(email)
	displayName := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		displayName = email[:i]
	}

	u := &models.User{}
	err := s.db.QueryRow(`
		INSERT INTO users (email, display_name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id, email, display_name, created_at, updated_at
	`, email, displayName).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("find or create user: %w", err)
	}
	return u, nil
}

// Delete removes a user by ID.
func (s *UserStore) Delete(userID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// normalizeEmail lowercases and trims an email address so that the same
// mailbox always maps to the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
