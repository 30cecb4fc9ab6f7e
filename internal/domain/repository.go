package domain

import "context"

// QuizRepository defines the interface for quiz and attempt persistence.
// Lookups return (nil, nil) when nothing matches.
type QuizRepository interface {
	// SaveQuiz persists a quiz together with its questions.
	SaveQuiz(ctx context.Context, quiz *Quiz) error

	// GetQuizByID retrieves a quiz and its questions in generation order.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// SaveAttempt persists a graded submission.
	SaveAttempt(ctx context.Context, attempt *Attempt) error

	// GetAttemptByID retrieves a graded submission.
	GetAttemptByID(ctx context.Context, id string) (*Attempt, error)

	// ListAttemptsByQuiz returns every attempt for a quiz, oldest first.
	ListAttemptsByQuiz(ctx context.Context, quizID string) ([]*Attempt, error)
}
