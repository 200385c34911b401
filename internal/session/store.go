package session

import "context"

// Store is the narrow persistence surface a live session needs. The gorm
// repository layer satisfies it through an adapter in the service package,
// and tests satisfy it with an in-memory fake.
type Store interface {
	// UpdateAttemptAnswers overwrites the attempt's whole answer map.
	// Last write wins; there is no optimistic concurrency check.
	UpdateAttemptAnswers(ctx context.Context, attemptID string, answers AnswerMap) error

	// CompleteAttempt writes the terminal record: the final answer map plus
	// the derived scoring fields. It must only succeed once per attempt.
	CompleteAttempt(ctx context.Context, attemptID string, answers AnswerMap, result Result) error
}
