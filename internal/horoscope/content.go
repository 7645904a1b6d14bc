// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// Package horoscope implements the generate-or-fetch core: prompting an
// LLM for daily content, validating the structured response, and caching
// exactly one record per (sign, date) in the database.
package horoscope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed content_schema.json
var contentSchemaJSON []byte

// contentSchema is the compiled schema every generated payload must match.
// Compiled once at package init; the schema is embedded and static, so a
// compile failure is a programming error.
var contentSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("content_schema.json", bytes.NewReader(contentSchemaJSON)); err != nil {
		panic(fmt.Sprintf("horoscope: add content schema: %v", err))
	}
	schema, err := compiler.Compile("content_schema.json")
	if err != nil {
		panic(fmt.Sprintf("horoscope: compile content schema: %v", err))
	}
	return schema
}

// LongContent holds the four named sections of the detailed reading.
type LongContent struct {
	General     string `json:"general"`
	Love        string `json:"love"`
	CareerMoney string `json:"career_money"`
	Advice      string `json:"advice"`
}

// GeneratedContent is the intermediate structured shape returned by the
// model. It is validated, formatted into a Horoscope record, and then
// discarded; it is never persisted directly.
type GeneratedContent struct {
	Short string      `json:"short"`
	Long  LongContent `json:"long"`
}

// parseGeneratedContent parses raw model output and validates it against
// the content schema. All five text fields must be present and non-empty;
// there is no partial acceptance and no defaulting of missing fields.
func parseGeneratedContent(raw string) (*GeneratedContent, error) {
	cleaned := stripCodeFences(raw)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: parse JSON: %v", ErrInvalidShape, err)
	}

	if err := contentSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	var content GeneratedContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidShape, err)
	}

	return &content, nil
}

// stripCodeFences removes a surrounding markdown code fence if the model
// wrapped its JSON in one despite the JSON-only instruction.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}

	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// sectionOrder fixes the order and headings of the long reading.
var sectionOrder = []struct {
	title string
	field func(*LongContent) string
}{
	{"General", func(l *LongContent) string { return l.General }},
	{"Love", func(l *LongContent) string { return l.Love }},
	{"Career/Money", func(l *LongContent) string { return l.CareerMoney }},
	{"Advice", func(l *LongContent) string { return l.Advice }},
}

// FormatLongText concatenates the four sections into one text blob, each
// introduced by a level-2 markdown heading and separated by blank lines.
// Pure and deterministic given its input.
func FormatLongText(long *LongContent) string {
	parts := make([]string, 0, len(sectionOrder)*3)
	for i, section := range sectionOrder {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, "## "+section.title, strings.TrimSpace(section.field(long)))
	}
	return strings.Join(parts, "\n")
}
