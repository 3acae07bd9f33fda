package usecase

import (
	"context"
	"fmt"
	"time"

	"carecompanion-backend/internal/question/domain"
	"carecompanion-backend/internal/question/repository"
)

// questionUsecase implements QuestionUsecase interface
type questionUsecase struct {
	repo       repository.QuestionRepository
	dailyCount int
}

// NewQuestionUsecase creates a new instance of questionUsecase
func NewQuestionUsecase(repo repository.QuestionRepository, dailyCount int) QuestionUsecase {
	if dailyCount <= 0 {
		dailyCount = DefaultDailyCount
	}
	return &questionUsecase{repo: repo, dailyCount: dailyCount}
}

func (u *questionUsecase) DailyQuestions(ctx context.Context, date string) ([]*domain.Question, error) {
	bank, err := u.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, ErrNoQuestionsAvailable
	}
	return SelectDaily(bank, date, u.dailyCount), nil
}

func (u *questionUsecase) AllQuestions(ctx context.Context) ([]*domain.Question, error) {
	return u.repo.FindActiveByCategory(ctx)
}

func (u *questionUsecase) SeedIfEmpty(ctx context.Context, questions []*domain.Question) (int, error) {
	count, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	// Spread creation times so insertion order survives the created_at sort.
	base := time.Now().Truncate(time.Second)
	for i, q := range questions {
		q.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if err := u.repo.Create(ctx, q); err != nil {
			return i, fmt.Errorf("seed question %d: %w", i, err)
		}
	}
	return len(questions), nil
}
