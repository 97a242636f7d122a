package questiongen

import (
	"context"
	"errors"
	"testing"
)

type stubGenerator struct {
	questions []*Question
	err       error
	inputs    []GenerateInput
}

func (g *stubGenerator) Generate(_ context.Context, input GenerateInput) (*Question, error) {
	g.inputs = append(g.inputs, input)
	if g.err != nil {
		return nil, g.err
	}
	q := g.questions[0]
	g.questions = g.questions[1:]
	return q, nil
}

func TestService_GenerateQuestion(t *testing.T) {
	gen := &stubGenerator{questions: []*Question{validQuestion()}}
	svc := NewService(gen, []string{"geography"})

	q, err := svc.GenerateQuestion(context.Background(), "sess-1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("expected generated ID")
	}
	if !q.AIGenerated {
		t.Error("expected AIGenerated flag")
	}
	if q.CorrectAnswer != "Canberra" {
		t.Errorf("unexpected correct answer: %q", q.CorrectAnswer)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if got := gen.inputs[0]; got.Score != 7 || len(got.Categories) != 1 {
		t.Errorf("unexpected generate input: %+v", got)
	}
}

func TestService_TracksPriorQuestions(t *testing.T) {
	first := validQuestion()
	second := validQuestion()
	second.Text = "What is the capital of Canada?"
	second.Answers = []string{"Toronto", "Ottawa", "Vancouver", "Montreal"}
	second.CorrectAnswer = "Ottawa"

	gen := &stubGenerator{questions: []*Question{first, second}}
	svc := NewService(gen, nil)

	if _, err := svc.GenerateQuestion(context.Background(), "sess-1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GenerateQuestion(context.Background(), "sess-1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gen.inputs[0].PriorQuestions) != 0 {
		t.Errorf("first call should have no prior questions: %v", gen.inputs[0].PriorQuestions)
	}
	if len(gen.inputs[1].PriorQuestions) != 1 || gen.inputs[1].PriorQuestions[0] != first.Text {
		t.Errorf("second call should carry first question: %v", gen.inputs[1].PriorQuestions)
	}
}

func TestService_GenerateError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	svc := NewService(gen, nil)

	_, err := svc.GenerateQuestion(context.Background(), "sess-1", 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(gen.inputs) != 1 {
		t.Fatalf("expected 1 generate call, got %d", len(gen.inputs))
	}
}
