// Package main is the entry point for the Astrodaily server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astrodaily/internal/ai"
	"astrodaily/internal/auth"
	"astrodaily/internal/cache"
	"astrodaily/internal/config"
	"astrodaily/internal/database"
	"astrodaily/internal/handlers"
	"astrodaily/internal/horoscope"
	"astrodaily/internal/render"
	"astrodaily/internal/router"
	"astrodaily/internal/session"
	"astrodaily/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (sessions, login tokens, record cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize the HTML renderer for public pages.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	horoscopeStore := store.NewHoroscopeStore(db)

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"gemini":  {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Wire the fetch-or-create core: generator, record cache, service.
	generator := horoscope.NewGenerator(aiRegistry)
	recordCache := cache.NewHoroscopeCache(valkeyClient, cache.DefaultHoroscopeTTL)
	svc := horoscope.NewService(horoscopeStore, generator, recordCache)

	// Magic-link login collaborators.
	tokenStore := auth.NewTokenStore(valkeyClient)
	mailer := auth.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)

	// Create handler groups with their dependencies.
	apiHandlers := handlers.NewAPI(svc)
	authHandlers := handlers.NewAuth(renderer, sessionStore, tokenStore, mailer, userStore, cfg.PublicURL)
	publicHandlers := handlers.NewPublic(renderer, svc)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, apiHandlers, authHandlers, publicHandlers)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate first-of-the-day requests that wait on
	// the LLM response (typically 10-30s).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
