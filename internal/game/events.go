package game

import "github.com/joe192839/Mindduel/internal/question"

// Event is a state change announced to the presentation layer.
type Event interface{ isEvent() }

// Sink receives controller events. Delivery is synchronous on the calling
// goroutine, so sinks must be fast and non-blocking (typically a buffered
// channel send).
type Sink func(Event)

// SessionStarted fires once the service has assigned a session id.
type SessionStarted struct {
	SessionID string
}

// QuestionReady fires when the next question is on screen and its countdown
// has started.
type QuestionReady struct {
	Question question.Question
	Index    int
	Limit    int
}

// AnswerResult fires after a submitted answer is judged or the countdown
// expires. Expired results never involve a network round-trip for the
// answer itself.
type AnswerResult struct {
	Correct bool
	Expired bool
	Score   int
	Lives   int
}

// TransitionStarted fires when the time budget shrinks and the announcement
// animation begins. The countdown is stopped for its duration.
type TransitionStarted struct {
	OldLimit int
	NewLimit int
}

// TransitionEnded fires when the announcement finishes; the next countdown
// starts with Limit.
type TransitionEnded struct {
	Limit int
}

// TimerTick fires on every countdown recomputation.
type TimerTick struct {
	Remaining int
}

// SessionEnded fires exactly once per session. Redirect is the results
// target, always set even if the end-of-session report failed.
type SessionEnded struct {
	Reason   EndReason
	Redirect string
	Score    int
	Lives    int
}

// Failure surfaces an operation error to the presentation layer.
type Failure struct {
	Op  string
	Err error
}

func (SessionStarted) isEvent()    {}
func (QuestionReady) isEvent()     {}
func (AnswerResult) isEvent()      {}
func (TransitionStarted) isEvent() {}
func (TransitionEnded) isEvent()   {}
func (TimerTick) isEvent()         {}
func (SessionEnded) isEvent()      {}
func (Failure) isEvent()           {}
