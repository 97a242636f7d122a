package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quizmaster writing trivia questions for a fast-paced, timed quiz game.

Rules:
- Generate a single multiple-choice trivia question with exactly 4 options where exactly one is correct.
- The question must have one objectively verifiable answer. No opinion, no trick questions, no "all of the above".
- Distractors must be plausible: same kind of thing as the answer, not obviously wrong.
- Keep the question short enough to read and answer under time pressure; one sentence whenever possible.
- Plain text only. No markup, no numbering of the options.
- Match the requested difficulty: 1 is common knowledge, 5 is specialist knowledge.
- Do not repeat any question from the "already asked" list, or minor rewordings of one.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	if len(input.Categories) > 0 {
		fmt.Fprintf(&b, "Categories: %s\n", strings.Join(input.Categories, ", "))
	} else {
		b.WriteString("Categories: any\n")
	}
	fmt.Fprintf(&b, "Difficulty: %d\n", difficultyForScore(input.Score))

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// difficultyForScore maps the running score to a 1-5 difficulty. Every six
// points buys one level.
func difficultyForScore(score int) int {
	d := 1 + score/6
	if d > 5 {
		d = 5
	}
	if d < 1 {
		d = 1
	}
	return d
}
