package repository

import (
	"context"

	"carecompanion-backend/internal/question/domain"
)

// QuestionRepository defines read access to the question bank
type QuestionRepository interface {
	// Create inserts a question, assigning an id when empty
	Create(ctx context.Context, q *domain.Question) error

	// FindActive returns active questions in insertion order
	FindActive(ctx context.Context) ([]*domain.Question, error)

	// FindActiveByCategory returns active questions ordered by category
	FindActiveByCategory(ctx context.Context) ([]*domain.Question, error)

	// Count returns the number of questions in the bank, active or not
	Count(ctx context.Context) (int64, error)
}
