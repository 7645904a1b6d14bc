// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host      string
	Port      string
	Env       string // "development", "production", "testing"
	PublicURL string // External base URL, used when building magic links

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache, sessions, login tokens)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI provider settings
	AIProvider string // "openai", "gemini", "claude", "mistral"

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	ClaudeKey     string
	ClaudeModel   string
	ClaudeBaseURL string

	MistralKey     string
	MistralModel   string
	MistralBaseURL string

	// SMTP for magic-link delivery. Optional: without a host, links are
	// logged instead of mailed.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:      envOrDefault("APP_HOST", "0.0.0.0"),
		Port:      envOrDefault("APP_PORT", "8080"),
		Env:       envOrDefault("APP_ENV", "development"),
		PublicURL: envOrDefault("APP_PUBLIC_URL", "http://localhost:8080"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "astrodaily"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "astrodaily"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider: envOrDefault("AI_PROVIDER", "openai"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   envOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		ClaudeKey:     os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:   envOrDefault("CLAUDE_MODEL", "claude-sonnet-4-5"),
		ClaudeBaseURL: os.Getenv("CLAUDE_BASE_URL"),

		MistralKey:     os.Getenv("MISTRAL_API_KEY"),
		MistralModel:   envOrDefault("MISTRAL_MODEL", "mistral-small-latest"),
		MistralBaseURL: os.Getenv("MISTRAL_BASE_URL"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envOrDefault("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     envOrDefault("MAIL_FROM", "no-reply@astrodaily.local"),
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
