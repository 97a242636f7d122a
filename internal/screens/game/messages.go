package game

import (
	"time"

	gamectl "github.com/joe192839/Mindduel/internal/game"
)

// warmupTickMsg advances the pre-game warmup animation by one step.
type warmupTickMsg time.Time

// controllerEventMsg wraps a controller event pulled off the event channel.
type controllerEventMsg struct {
	Event gamectl.Event
}

// timerTickMsg drives the countdown recomputation while a question is live.
type timerTickMsg time.Time

// feedbackDoneMsg clears the correct/wrong flash after its display period.
type feedbackDoneMsg struct {
	seq int
}
