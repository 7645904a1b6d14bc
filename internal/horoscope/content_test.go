package horoscope

import (
	"errors"
	"strings"
	"testing"
)

const validPayload = `{
	"short": "A bright day ahead.\nTrust your instincts.",
	"long": {
		"general": "The stars align in your favour today.",
		"love": "An old connection resurfaces.",
		"career_money": "A careful decision pays off.",
		"advice": "Move slowly and listen."
	}
}`

func TestParseGeneratedContentValid(t *testing.T) {
	content, err := parseGeneratedContent(validPayload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !strings.HasPrefix(content.Short, "A bright day") {
		t.Errorf("short: got %q", content.Short)
	}
	if content.Long.CareerMoney != "A careful decision pays off." {
		t.Errorf("career_money: got %q", content.Long.CareerMoney)
	}
}

func TestParseGeneratedContentFenced(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"
	content, err := parseGeneratedContent(fenced)
	if err != nil {
		t.Fatalf("parse fenced: %v", err)
	}
	if content.Long.Advice != "Move slowly and listen." {
		t.Errorf("advice: got %q", content.Long.Advice)
	}
}

func TestParseGeneratedContentRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "here is your horoscope: have a nice day"},
		{"empty string", ""},
		{"missing short", `{"long":{"general":"a","love":"b","career_money":"c","advice":"d"}}`},
		{"missing section", `{"short":"s","long":{"general":"a","love":"b","advice":"d"}}`},
		{"empty field", `{"short":"s","long":{"general":"","love":"b","career_money":"c","advice":"d"}}`},
		{"short not string", `{"short":42,"long":{"general":"a","love":"b","career_money":"c","advice":"d"}}`},
		{"long not object", `{"short":"s","long":"everything is fine"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGeneratedContent(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidShape) {
				t.Errorf("expected ErrInvalidShape, got %v", err)
			}
		})
	}
}

func TestFormatLongText(t *testing.T) {
	long := &LongContent{
		General:     "General text.",
		Love:        "Love text.",
		CareerMoney: "Career text.",
		Advice:      "Advice text.",
	}

	want := "## General\nGeneral text.\n\n## Love\nLove text.\n\n## Career/Money\nCareer text.\n\n## Advice\nAdvice text."
	if got := FormatLongText(long); got != want {
		t.Errorf("format:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatLongTextTrimsSections(t *testing.T) {
	long := &LongContent{
		General:     "  padded  ",
		Love:        "love",
		CareerMoney: "career",
		Advice:      "advice\n",
	}

	got := FormatLongText(long)
	if strings.Contains(got, "  padded") {
		t.Errorf("general not trimmed: %q", got)
	}
	if strings.Contains(got, "advice\n\n\n") {
		t.Errorf("advice not trimmed: %q", got)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
