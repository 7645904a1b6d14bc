// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package horoscope

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"astrodaily/internal/ai"
	"astrodaily/internal/models"
)

// generationTemperature favours creative variation over determinism.
// Horoscopes are expected to differ day to day and sign to sign.
const generationTemperature = 0.8

// systemPrompt pins the model to strict JSON output.
const systemPrompt = "You are a precise JSON generator for daily horoscopes. Output only JSON."

// TextGenerator is the slice of the AI registry the generator needs.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// Generator produces one day's structured horoscope content for a sign
// by prompting the active LLM provider and validating its response.
type Generator struct {
	llm TextGenerator
}

// NewGenerator creates a Generator backed by the given text generator
// (normally the ai.Registry).
func NewGenerator(llm TextGenerator) *Generator {
	return &Generator{llm: llm}
}

// buildPrompt assembles the user prompt: style directive, safety
// constraints, length requirements, and the exact JSON shape expected.
func buildPrompt(sign models.Sign, date string) string {
	return strings.Join([]string{
		fmt.Sprintf("Generate a daily horoscope for the zodiac sign %q on date %s.", sign, date),
		"Style: mysterious, emotional, specific, uplifting.",
		"Avoid harmful content. No medical or legal advice. No explicit sexual content.",
		"Short: 2-3 lines.",
		"Long: 8-12 lines total across these sections.",
		"Return strict JSON with this shape:",
		`{ "short": "2-3 lines", "long": { "general": "...", "love": "...", "career_money": "...", "advice": "..." } }`,
	}, " ")
}

// Generate makes a single generation call for (sign, date) and returns the
// validated structured content. There are no retries: a transport failure,
// missing credentials, or a malformed response is fatal for the request.
func (g *Generator) Generate(ctx context.Context, sign models.Sign, date string) (*GeneratedContent, error) {
	raw, err := g.llm.GenerateJSON(ctx, systemPrompt, buildPrompt(sign, date), generationTemperature)
	if err != nil {
		var noProvider *ai.ErrNoProvider
		if errors.As(err, &noProvider) {
			return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		return nil, fmt.Errorf("generate horoscope: %w", err)
	}

	return parseGeneratedContent(raw)
}
