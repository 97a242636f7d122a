package questiongen

import "context"

// Generator produces a single trivia question for the given input.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
