package questiongen

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 300 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text exceeds 300 characters",
			Retryable: true,
		}
	}
	if q.Category == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "category is empty",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	return nil
}
