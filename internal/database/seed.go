package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data.
// It creates a demo reader account if no users exist, so the gated
// long-form reading can be exercised locally without a mail server.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO users (email, display_name)
		VALUES ($1, $2)
	`, "reader@astrodaily.local", "Demo Reader")
	if err != nil {
		return fmt.Errorf("seed insert reader: %w", err)
	}

	slog.Info("database seeded with demo reader account",
		"email", "reader@astrodaily.local",
	)

	return nil
}
