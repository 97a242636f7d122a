package questiongen

import (
	"fmt"
	"strings"
)

// AnswerSetValidator checks the option set: exactly 4 distinct non-empty
// answers with the correct answer among them.
type AnswerSetValidator struct{}

func (v *AnswerSetValidator) Name() string { return "answer-set" }

func (v *AnswerSetValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if len(q.Answers) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 answers, got %d", len(q.Answers)),
			Retryable: true,
		}
	}

	seen := make(map[string]bool, 4)
	for i, a := range q.Answers {
		norm := strings.ToLower(strings.TrimSpace(a))
		if norm == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("answer %d is empty", i+1),
				Retryable: true,
			}
		}
		if len(a) > 100 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("answer %d exceeds 100 characters", i+1),
				Retryable: true,
			}
		}
		if seen[norm] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate answer %q", a),
				Retryable: true,
			}
		}
		seen[norm] = true
	}

	if q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
			Retryable: true,
		}
	}
	for _, a := range q.Answers {
		if a == q.CorrectAnswer {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   "correct_answer does not match any answer",
		Retryable: true,
	}
}
