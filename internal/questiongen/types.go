// Package questiongen generates multiple-choice trivia questions with an
// LLM, validated by a chain of validators before they reach the player.
package questiongen

// Question is a generated trivia question before normalization.
type Question struct {
	// Text is the question prompt displayed to the player.
	Text string

	// Answers contains exactly 4 options, one of which matches
	// CorrectAnswer.
	Answers []string

	// CorrectAnswer is the text of the correct option.
	CorrectAnswer string

	// Category the question belongs to, e.g. "science", "history".
	Category string

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	Difficulty int

	// Explanation is a one-or-two sentence justification of the answer,
	// shown on the results screen.
	Explanation string
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Categories restricts generation to the named categories. Empty
	// means any.
	Categories []string

	// Score is the player's current score; higher scores ask for harder
	// questions.
	Score int

	// PriorQuestions contains the Text of questions already asked this
	// session. Used for deduplication in the prompt.
	PriorQuestions []string
}
