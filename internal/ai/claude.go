// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// claudeProvider implements the Provider interface using the Anthropic
// Messages API (POST /v1/messages).
type claudeProvider struct {
	config ProviderConfig
	client *http.Client
}

// newClaude creates a new Anthropic Claude provider.
func newClaude(cfg ProviderConfig) *claudeProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	return &claudeProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *claudeProvider) Name() string { return "claude" }

// Generate sends a message to the Anthropic Messages API.
func (p *claudeProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := claudeRequest{
		Model:     p.config.Model,
		MaxTokens: 4096,
		System:    systemPrompt,
		Messages: []claudeMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	return p.doMessages(ctx, body)
}

// GenerateJSON sends a message with the given sampling temperature and an
// assistant prefill of "{", which anchors the model to emit a bare JSON
// object. The Messages API has no response_format parameter, so the system
// prompt must also demand JSON-only output.
func (p *claudeProvider) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	body := claudeRequest{
		Model:       p.config.Model,
		MaxTokens:   4096,
		System:      systemPrompt,
		Temperature: &temperature,
		Messages: []claudeMessage{
			{Role: "user", Content: userPrompt},
			{Role: "assistant", Content: "{"},
		},
	}

	text, err := p.doMessages(ctx, body)
	if err != nil {
		return "", err
	}

	// The response continues the prefilled "{".
	return "{" + text, nil
}

// doMessages performs the HTTP call to the Messages endpoint.
func (p *claudeProvider) doMessages(ctx context.Context, body claudeRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("claude marshal: %w", err)
	}

	url := p.config.BaseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("claude request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.config.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("claude read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result claudeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("claude unmarshal: %w", err)
	}

	// Extract text from the first content block.
	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("claude: no text content in response")
}

// --- Anthropic Messages API types ---

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	System      string          `json:"system,omitempty"`
	Temperature *float64        `json:"temperature,omitempty"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content []claudeContentBlock `json:"content"`
}
