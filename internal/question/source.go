package question

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// StandardService fetches the next pre-authored question for a session.
type StandardService interface {
	NextQuestion(ctx context.Context, sessionID string) (Question, error)
}

// AIService generates a fresh question tuned to the player's current score.
type AIService interface {
	GenerateQuestion(ctx context.Context, sessionID string, score int) (Question, error)
}

// Source supplies the next question for a session.
type Source interface {
	Next(ctx context.Context, score int) (Question, error)
	// UsingAI reports whether the source is still serving generated
	// questions. Once it falls back it stays fallen back.
	UsingAI() bool
}

// StandardSource serves pre-authored questions only.
type StandardSource struct {
	svc       StandardService
	sessionID string
}

// NewStandardSource creates a source bound to one session.
func NewStandardSource(svc StandardService, sessionID string) *StandardSource {
	return &StandardSource{svc: svc, sessionID: sessionID}
}

func (s *StandardSource) Next(ctx context.Context, score int) (Question, error) {
	return s.svc.NextQuestion(ctx, s.sessionID)
}

func (s *StandardSource) UsingAI() bool { return false }

// FallbackSource serves generated questions until generation fails, then
// permanently downgrades to the standard pool. The downgrade happens at most
// once per session; a failed generation is retried immediately against the
// standard service so the player never sees the switch.
type FallbackSource struct {
	std       StandardService
	ai        AIService
	sessionID string
	log       zerolog.Logger

	mu    sync.Mutex
	useAI bool
}

// NewFallbackSource creates a source that prefers generated questions.
func NewFallbackSource(std StandardService, ai AIService, sessionID string, log zerolog.Logger) *FallbackSource {
	return &FallbackSource{
		std:       std,
		ai:        ai,
		sessionID: sessionID,
		log:       log,
		useAI:     ai != nil,
	}
}

func (s *FallbackSource) Next(ctx context.Context, score int) (Question, error) {
	s.mu.Lock()
	useAI := s.useAI
	s.mu.Unlock()

	if useAI {
		q, err := s.ai.GenerateQuestion(ctx, s.sessionID, score)
		if err == nil {
			return q, nil
		}
		if ctx.Err() != nil {
			return Question{}, ctx.Err()
		}

		s.mu.Lock()
		s.useAI = false
		s.mu.Unlock()
		s.log.Warn().Err(err).Str("session_id", s.sessionID).
			Msg("question generation failed, falling back to standard pool")
	}

	return s.std.NextQuestion(ctx, s.sessionID)
}

func (s *FallbackSource) UsingAI() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useAI
}
