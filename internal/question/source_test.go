package question

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type stubStandard struct {
	questions []Question
	err       error
	calls     int
}

func (s *stubStandard) NextQuestion(ctx context.Context, sessionID string) (Question, error) {
	s.calls++
	if s.err != nil {
		return Question{}, s.err
	}
	if len(s.questions) == 0 {
		return Question{}, ErrExhausted
	}
	q := s.questions[0]
	s.questions = s.questions[1:]
	return q, nil
}

type stubAI struct {
	question Question
	err      error
	calls    int
}

func (s *stubAI) GenerateQuestion(ctx context.Context, sessionID string, score int) (Question, error) {
	s.calls++
	if s.err != nil {
		return Question{}, s.err
	}
	return s.question, nil
}

func sampleQuestion(id string) Question {
	return Question{
		ID:            id,
		Text:          "What is the capital of France?",
		Options:       []string{"Paris", "Lyon", "Nice", "Lille"},
		CorrectAnswer: "Paris",
		Category:      "geography",
	}
}

func TestFallbackSource_ServesAIWhileHealthy(t *testing.T) {
	ai := &stubAI{question: sampleQuestion("gen-1")}
	std := &stubStandard{questions: []Question{sampleQuestion("42")}}
	src := NewFallbackSource(std, ai, "s1", zerolog.Nop())

	q, err := src.Next(context.Background(), 0)
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if q.ID != "gen-1" {
		t.Fatalf("Next returned %q, want gen-1", q.ID)
	}
	if std.calls != 0 {
		t.Fatalf("standard service called %d times, want 0", std.calls)
	}
	if !src.UsingAI() {
		t.Fatal("UsingAI() = false while generation is healthy")
	}
}

func TestFallbackSource_DowngradeIsPermanent(t *testing.T) {
	ai := &stubAI{err: errors.New("model unavailable")}
	std := &stubStandard{questions: []Question{sampleQuestion("1"), sampleQuestion("2")}}
	src := NewFallbackSource(std, ai, "s1", zerolog.Nop())

	// The failed generation is retried against the standard pool within the
	// same call.
	q, err := src.Next(context.Background(), 5)
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if q.ID != "1" {
		t.Fatalf("Next returned %q, want 1", q.ID)
	}
	if src.UsingAI() {
		t.Fatal("UsingAI() = true after generation failure")
	}

	// Subsequent calls never touch the AI service again.
	if _, err := src.Next(context.Background(), 6); err != nil {
		t.Fatalf("second Next returned error: %v", err)
	}
	if ai.calls != 1 {
		t.Fatalf("AI service called %d times, want 1", ai.calls)
	}
}

func TestFallbackSource_ContextCancelDoesNotDowngrade(t *testing.T) {
	ai := &stubAI{err: context.Canceled}
	std := &stubStandard{}
	src := NewFallbackSource(std, ai, "s1", zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Next(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("Next error = %v, want context.Canceled", err)
	}
	if !src.UsingAI() {
		t.Fatal("cancellation downgraded the source")
	}
	if std.calls != 0 {
		t.Fatalf("standard service called %d times after cancel, want 0", std.calls)
	}
}

func TestFallbackSource_WithoutAIService(t *testing.T) {
	std := &stubStandard{questions: []Question{sampleQuestion("7")}}
	src := NewFallbackSource(std, nil, "s1", zerolog.Nop())

	if src.UsingAI() {
		t.Fatal("UsingAI() = true with no AI service configured")
	}
	q, err := src.Next(context.Background(), 0)
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if q.ID != "7" {
		t.Fatalf("Next returned %q, want 7", q.ID)
	}
}

func TestStandardSource_Exhaustion(t *testing.T) {
	std := &stubStandard{questions: []Question{sampleQuestion("1")}}
	src := NewStandardSource(std, "s1")

	if _, err := src.Next(context.Background(), 0); err != nil {
		t.Fatalf("first Next returned error: %v", err)
	}
	if _, err := src.Next(context.Background(), 1); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Next error = %v, want ErrExhausted", err)
	}
}

func TestQuestion_UnmarshalNumericID(t *testing.T) {
	raw := `{"id": 1234, "question": "Q?", "options": ["a","b","c","d"], "correct_answer": "a", "category": "science"}`
	var q Question
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if q.ID != "1234" {
		t.Errorf("ID = %q, want 1234", q.ID)
	}
	if q.CorrectAnswer != "a" {
		t.Errorf("CorrectAnswer = %q, want a", q.CorrectAnswer)
	}
}

func TestQuestion_Validate(t *testing.T) {
	good := sampleQuestion("1")
	if err := good.Validate(); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}

	bad := good
	bad.Options = []string{"a", "b", "c"}
	if err := bad.Validate(); err == nil {
		t.Error("three-option question accepted")
	}

	bad = good
	bad.CorrectAnswer = "Berlin"
	if err := bad.Validate(); err == nil {
		t.Error("question with out-of-set answer accepted")
	}
}
