package questiongen

import "github.com/joe192839/Mindduel/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "trivia-question",
	Description: "A single multiple-choice trivia question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The question shown to the player, one sentence, plain text",
			},
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 options where exactly one is correct",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, matching one entry of answers verbatim",
			},
			"category": map[string]any{
				"type":        "string",
				"description": "The category this question belongs to, lowercase snake_case",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining why the answer is correct",
			},
		},
		"required":             []any{"text", "answers", "correct_answer", "category", "difficulty", "explanation"},
		"additionalProperties": false,
	},
}
