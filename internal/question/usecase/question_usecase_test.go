package usecase

import (
	"context"
	"fmt"
	"testing"

	"carecompanion-backend/internal/question/domain"
	"carecompanion-backend/internal/question/repository"
	"carecompanion-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsecase(t *testing.T) (QuestionUsecase, repository.QuestionRepository) {
	repo := repository.NewGormQuestionRepository(testutil.NewTestDB(t, &domain.Question{}))
	return NewQuestionUsecase(repo, 0), repo
}

func bankQuestions(n int) []*domain.Question {
	out := make([]*domain.Question, n)
	for i := range out {
		out[i] = &domain.Question{QuestionText: fmt.Sprintf("q%d", i), Category: domain.CategoryEmotional, IsActive: true}
	}
	return out
}

func texts(qs []*domain.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.QuestionText
	}
	return out
}

func TestDailyQuestions_EmptyBank(t *testing.T) {
	uc, _ := newUsecase(t)
	_, err := uc.DailyQuestions(context.Background(), "2026-02-08")
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
}

func TestDailyQuestions_FollowsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUsecase(t)

	n, err := uc.SeedIfEmpty(ctx, bankQuestions(10))
	require.NoError(t, err)
	require.Equal(t, 10, n)

	got, err := uc.DailyQuestions(ctx, "2026-02-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"q2", "q8", "q0", "q9", "q4"}, texts(got))
}

func TestDailyQuestions_IgnoresInactive(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUsecase(t)

	require.NoError(t, repo.Create(ctx, &domain.Question{QuestionText: "a", Category: domain.CategorySleep, IsActive: true}))
	require.NoError(t, repo.Create(ctx, &domain.Question{QuestionText: "retired", Category: domain.CategorySleep, IsActive: false}))

	got, err := uc.DailyQuestions(ctx, "2026-02-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, texts(got))
}

func TestSeedIfEmpty_SkipsPopulatedBank(t *testing.T) {
	ctx := context.Background()
	uc, repo := newUsecase(t)

	_, err := uc.SeedIfEmpty(ctx, bankQuestions(3))
	require.NoError(t, err)

	n, err := uc.SeedIfEmpty(ctx, []*domain.Question{{QuestionText: "extra", Category: domain.CategorySocial, IsActive: true}})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAllQuestions_OrderedByCategory(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUsecase(t)

	_, err := uc.SeedIfEmpty(ctx, []*domain.Question{
		{QuestionText: "s1", Category: domain.CategorySleep, IsActive: true},
		{QuestionText: "e1", Category: domain.CategoryEmotional, IsActive: true},
		{QuestionText: "a1", Category: domain.CategoryAnxiety, IsActive: true},
		{QuestionText: "e2", Category: domain.CategoryEmotional, IsActive: true},
	})
	require.NoError(t, err)

	got, err := uc.AllQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "e1", "e2", "s1"}, texts(got))
}
