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

// geminiProvider implements the Provider interface using the Google
// Gemini REST API (POST /v1beta/models/{model}:generateContent).
type geminiProvider struct {
	config ProviderConfig
	client *http.Client
}

// newGemini creates a new Google Gemini provider.
func newGemini(cfg ProviderConfig) *geminiProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	return &geminiProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *geminiProvider) Name() string { return "gemini" }

// Generate sends a generateContent request to the Gemini API.
func (p *geminiProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: userPrompt}}},
		},
	}

	return p.doGenerate(ctx, body)
}

// GenerateJSON sends a generateContent request with responseMimeType set
// to application/json, constraining the model to JSON output.
func (p *geminiProvider) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	body := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: userPrompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      &temperature,
			ResponseMimeType: "application/json",
		},
	}

	return p.doGenerate(ctx, body)
}

// doGenerate performs the HTTP call to the generateContent endpoint.
func (p *geminiProvider) doGenerate(ctx context.Context, body geminiRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		p.config.BaseURL, p.config.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("gemini unmarshal: %w", err)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates returned")
	}

	// Extract text from the first candidate's parts.
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}

	return "", fmt.Errorf("gemini: no text in response")
}

// --- Gemini API types ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}
