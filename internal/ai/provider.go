// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface for interacting with multiple
// LLM providers (OpenAI, Gemini, Claude, Mistral). Each provider implements
// the Provider interface, and the Registry selects the active one by name.
package ai

import (
	"context"
	"fmt"
	"sync"
)

// Provider defines the interface that all AI providers must implement.
// Each provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the generated text.
	// systemPrompt sets the model's behaviour; userPrompt is the request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// GenerateJSON sends a prompt constrained to JSON-object output, with
	// the given sampling temperature. The returned string is the raw
	// payload; callers parse and validate it themselves.
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)

	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ErrNoProvider is returned when the active provider has no API key
// configured. For the horoscope generator this is a fatal per-request
// condition, not something to retry.
type ErrNoProvider struct {
	Name string
}

func (e *ErrNoProvider) Error() string {
	return fmt.Sprintf("ai: no provider configured for %q", e.Name)
}

// Registry manages available AI providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "gemini":
			r.providers[name] = newGemini(cfg)
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "mistral":
			r.providers[name] = newMistral(cfg)
		}
	}

	return r
}

// Generate calls the active provider's Generate method.
func (r *Registry) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, systemPrompt, userPrompt)
}

// GenerateJSON calls the active provider's GenerateJSON method.
func (r *Registry) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.GenerateJSON(ctx, systemPrompt, userPrompt, temperature)
}

// Active returns the currently active provider, or *ErrNoProvider when
// no credentials exist for the active name.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, &ErrNoProvider{Name: r.active}
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. This allows
// injecting custom providers at runtime (used by tests to stub the LLM).
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
