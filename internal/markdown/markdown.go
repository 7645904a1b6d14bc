// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// Package markdown converts the long reading's section text into HTML
// using goldmark. The long_text blob uses "## Title" headings between
// blank-line-separated sections, which is plain Markdown.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the configured goldmark instance, reused across calls. Raw HTML
// pass-through stays disabled: the source text is model-generated.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Typographer, // Smart quotes and dashes
	),
)

// ToHTML converts Markdown source into HTML. Any raw HTML embedded in the
// source is escaped, not rendered.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
