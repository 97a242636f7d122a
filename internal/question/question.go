// Package question defines the trivia question model and the sources that
// supply questions to a running session.
package question

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrExhausted is returned by a source when no further questions are
// available for the session.
var ErrExhausted = errors.New("question pool exhausted")

// Question is a single multiple-choice trivia question as served to the
// player. CorrectAnswer is the full answer text, matched against the chosen
// option verbatim.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Category      string   `json:"category"`
	AIGenerated   bool     `json:"ai_generated,omitempty"`
}

// questionWire mirrors Question but tolerates numeric ids. The quickplay
// service serves database-backed questions with integer ids and generated
// ones with string ids.
type questionWire struct {
	ID            json.Number `json:"id"`
	Text          string      `json:"question"`
	Options       []string    `json:"options"`
	CorrectAnswer string      `json:"correct_answer"`
	Category      string      `json:"category"`
	AIGenerated   bool        `json:"ai_generated"`
}

// UnmarshalJSON accepts both string and integer ids.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	q.ID = w.ID.String()
	q.Text = w.Text
	q.Options = w.Options
	q.CorrectAnswer = w.CorrectAnswer
	q.Category = w.Category
	q.AIGenerated = w.AIGenerated
	return nil
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question %q: empty text", q.ID)
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("question %q: %d options, want 4", q.ID, len(q.Options))
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return fmt.Errorf("question %q: correct answer not among options", q.ID)
}

// IsCorrect reports whether the given answer text matches the correct one.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
