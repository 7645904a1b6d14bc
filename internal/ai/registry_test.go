// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
)

// mockProvider is a test double implementing the Provider interface.
// It records calls and returns configurable responses.
type mockProvider struct {
	name       string
	response   string
	err        error
	callCount  int
	lastSystem string
	lastUser   string
	lastTemp   float64
	mu         sync.Mutex
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	return m.response, m.err
}

func (m *mockProvider) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	m.lastTemp = temperature
	return m.response, m.err
}

func TestRegistryGenerateJSON(t *testing.T) {
	t.Run("delegates to active provider", func(t *testing.T) {
		mock := &mockProvider{name: "test", response: `{"ok":true}`}

		reg := &Registry{
			providers: map[string]Provider{"test": mock},
			active:    "test",
		}

		result, err := reg.GenerateJSON(context.Background(), "system", "user", 0.8)
		if err != nil {
			t.Fatalf("GenerateJSON: unexpected error: %v", err)
		}
		if result != `{"ok":true}` {
			t.Errorf("result: got %q", result)
		}

		mock.mu.Lock()
		defer mock.mu.Unlock()
		if mock.callCount != 1 {
			t.Errorf("callCount: got %d, want 1", mock.callCount)
		}
		if mock.lastTemp != 0.8 {
			t.Errorf("temperature: got %v, want 0.8", mock.lastTemp)
		}
	})

	t.Run("propagates provider error", func(t *testing.T) {
		mock := &mockProvider{name: "test", err: fmt.Errorf("api failure")}

		reg := &Registry{
			providers: map[string]Provider{"test": mock},
			active:    "test",
		}

		_, err := reg.GenerateJSON(context.Background(), "system", "user", 0.8)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "api failure" {
			t.Errorf("error: got %q, want %q", err.Error(), "api failure")
		}
	})
}

func TestRegistryNoProvider(t *testing.T) {
	reg := &Registry{
		providers: map[string]Provider{},
		active:    "openai",
	}

	_, err := reg.GenerateJSON(context.Background(), "system", "user", 0.8)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var noProvider *ErrNoProvider
	if !errors.As(err, &noProvider) {
		t.Fatalf("expected *ErrNoProvider, got %T: %v", err, err)
	}
	if noProvider.Name != "openai" {
		t.Errorf("name: got %q, want %q", noProvider.Name, "openai")
	}
}

func TestNewRegistrySkipsEmptyKeys(t *testing.T) {
	reg := NewRegistry("openai", map[string]ProviderConfig{
		"openai":  {APIKey: "sk-test", Model: "gpt-4o-mini"},
		"gemini":  {APIKey: "", Model: "gemini-2.0-flash"},
		"claude":  {APIKey: "ak-test", Model: "claude-sonnet-4-5"},
		"mistral": {APIKey: ""},
	})

	available := reg.Available()
	sort.Strings(available)

	want := []string{"claude", "openai"}
	if len(available) != len(want) {
		t.Fatalf("available: got %v, want %v", available, want)
	}
	for i := range want {
		if available[i] != want[i] {
			t.Errorf("available[%d]: got %q, want %q", i, available[i], want[i])
		}
	}

	if !reg.HasProvider("openai") {
		t.Error("openai should be available")
	}
	if reg.HasProvider("gemini") {
		t.Error("gemini has no key and should be skipped")
	}
}

func TestRegistrySetActive(t *testing.T) {
	reg := NewRegistry("openai", map[string]ProviderConfig{
		"openai": {APIKey: "sk-test"},
		"claude": {APIKey: "ak-test"},
	})

	if err := reg.SetActive("claude"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if got := reg.ActiveName(); got != "claude" {
		t.Errorf("active: got %q, want %q", got, "claude")
	}

	if err := reg.SetActive("gemini"); err == nil {
		t.Error("expected error switching to an unconfigured provider")
	}
	if got := reg.ActiveName(); got != "claude" {
		t.Errorf("failed switch changed active: got %q", got)
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry("stub", nil)
	reg.Register("stub", &mockProvider{name: "stub", response: "registered"})

	result, err := reg.Generate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result != "registered" {
		t.Errorf("result: got %q", result)
	}
}
