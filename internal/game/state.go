// Package game holds the session state machine for a quickplay run: score
// and lives tracking, the per-question countdown, difficulty transitions,
// and the four-step protocol with the remote service.
package game

import (
	"time"

	"github.com/joe192839/Mindduel/internal/question"
	"github.com/joe192839/Mindduel/internal/schedule"
)

const (
	// LivesStart is the number of lives a session begins with.
	LivesStart = 3

	// AnonymousSessionID is the sentinel id for sessions without an
	// account-backed record on the service.
	AnonymousSessionID = "anonymous"
)

// EndReason says why a session terminated.
type EndReason string

const (
	ReasonLives    EndReason = "lives"
	ReasonComplete EndReason = "complete"
	ReasonQuit     EndReason = "quit"
	ReasonTimeout  EndReason = "timeout"
	ReasonError    EndReason = "error"
)

// State is the mutable session state. All mutation goes through the
// controller; the presentation layer sees copies via events.
type State struct {
	SessionID     string
	QuestionIndex int
	Score         int
	Lives         int
	Active        bool

	Current *question.Question

	SoundEnabled bool
	Fullscreen   bool

	// HighestSpeedLevel is the smallest time limit reached this session,
	// reported to the service at end of game.
	HighestSpeedLevel int

	startedAt         time.Time
	questionShownAt   time.Time
	usedAIQuestions   bool
}

// reset returns the state to its pre-session shape. The sound preference
// survives, everything else is session-scoped.
func reset(s *State) {
	s.SessionID = ""
	s.QuestionIndex = 0
	s.Score = 0
	s.Lives = LivesStart
	s.Active = false
	s.Current = nil
	s.HighestSpeedLevel = schedule.InitialLimit
	s.startedAt = time.Time{}
	s.questionShownAt = time.Time{}
	s.usedAIQuestions = false
}

// initialize primes the state for a freshly started session.
func initialize(s *State, sessionID string, now time.Time) {
	sound := s.SoundEnabled
	reset(s)
	s.SoundEnabled = sound
	s.SessionID = sessionID
	s.Active = true
	s.startedAt = now
}

// setCurrentQuestion records a newly presented question.
func setCurrentQuestion(s *State, q question.Question, now time.Time) {
	s.Current = &q
	s.QuestionIndex++
	s.questionShownAt = now
	if q.AIGenerated {
		s.usedAIQuestions = true
	}
}

// trackSpeedLevel records the time limit now in force.
func trackSpeedLevel(s *State, limit int) {
	if limit < s.HighestSpeedLevel {
		s.HighestSpeedLevel = limit
	}
}
