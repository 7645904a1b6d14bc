package horoscope

import (
	"context"
	"errors"
	"strings"
	"testing"

	"astrodaily/internal/ai"
	"astrodaily/internal/models"
)

// stubLLM records the last GenerateJSON call and replays a canned reply.
type stubLLM struct {
	system      string
	user        string
	temperature float64
	calls       int

	reply string
	err   error
}

func (s *stubLLM) GenerateJSON(_ context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	s.calls++
	s.system = systemPrompt
	s.user = userPrompt
	s.temperature = temperature
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestGeneratorPrompt(t *testing.T) {
	llm := &stubLLM{reply: validPayload}
	gen := NewGenerator(llm)

	if _, err := gen.Generate(context.Background(), models.SignLeo, "2026-09-01"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if llm.temperature != 0.8 {
		t.Errorf("temperature: got %v, want 0.8", llm.temperature)
	}
	if !strings.Contains(llm.system, "Output only JSON") {
		t.Errorf("system prompt: got %q", llm.system)
	}

	for _, fragment := range []string{
		`"leo"`,
		"2026-09-01",
		"mysterious",
		"No medical or legal advice",
		`"career_money"`,
	} {
		if !strings.Contains(llm.user, fragment) {
			t.Errorf("user prompt missing %q:\n%s", fragment, llm.user)
		}
	}
}

func TestGeneratorNoProvider(t *testing.T) {
	llm := &stubLLM{err: &ai.ErrNoProvider{Name: "openai"}}
	gen := NewGenerator(llm)

	_, err := gen.Generate(context.Background(), models.SignAries, "2026-09-01")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGeneratorTransportError(t *testing.T) {
	llm := &stubLLM{err: errors.New("connection refused")}
	gen := NewGenerator(llm)

	_, err := gen.Generate(context.Background(), models.SignAries, "2026-09-01")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrInvalidShape) {
		t.Errorf("transport error misclassified: %v", err)
	}
}

func TestGeneratorInvalidShape(t *testing.T) {
	llm := &stubLLM{reply: `{"short": "only a short text"}`}
	gen := NewGenerator(llm)

	_, err := gen.Generate(context.Background(), models.SignAries, "2026-09-01")
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	if llm.calls != 1 {
		t.Errorf("generator retried: %d calls", llm.calls)
	}
}
