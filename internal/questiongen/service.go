package questiongen

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/joe192839/Mindduel/internal/question"
)

// Service adapts a Generator to the per-session question.AIService
// interface, tracking asked questions for prompt deduplication.
type Service struct {
	gen        Generator
	categories []string

	mu    sync.Mutex
	asked []string
}

// NewService wraps a generator for use as a question service. categories
// restricts generation; empty means any category.
func NewService(gen Generator, categories []string) *Service {
	return &Service{gen: gen, categories: categories}
}

// GenerateQuestion produces one validated question tuned to the score.
// Generated questions get a fresh UUID since they never touch the server's
// question pool.
func (s *Service) GenerateQuestion(ctx context.Context, sessionID string, score int) (question.Question, error) {
	s.mu.Lock()
	prior := make([]string, len(s.asked))
	copy(prior, s.asked)
	s.mu.Unlock()

	q, err := s.gen.Generate(ctx, GenerateInput{
		Categories:     s.categories,
		Score:          score,
		PriorQuestions: prior,
	})
	if err != nil {
		return question.Question{}, err
	}

	s.mu.Lock()
	s.asked = append(s.asked, q.Text)
	s.mu.Unlock()

	return question.Question{
		ID:            uuid.NewString(),
		Text:          q.Text,
		Options:       q.Answers,
		CorrectAnswer: q.CorrectAnswer,
		Category:      q.Category,
		AIGenerated:   true,
	}, nil
}
