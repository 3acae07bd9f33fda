package usecase

import (
	"context"
	"errors"

	"carecompanion-backend/internal/question/domain"
)

var ErrNoQuestionsAvailable = errors.New("no questions available")

// QuestionUsecase defines the interface for question bank business logic
type QuestionUsecase interface {
	// DailyQuestions returns the stable subset for the given ISO date (YYYY-MM-DD)
	DailyQuestions(ctx context.Context, date string) ([]*domain.Question, error)

	// AllQuestions returns the active bank ordered by category
	AllQuestions(ctx context.Context) ([]*domain.Question, error)

	// SeedIfEmpty inserts questions when the bank has none. Returns how many were inserted.
	SeedIfEmpty(ctx context.Context, questions []*domain.Question) (int, error)
}
