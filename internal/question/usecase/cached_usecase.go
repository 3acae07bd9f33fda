package usecase

import (
	"context"
	"time"

	"carecompanion-backend/internal/question/domain"

	"github.com/coocood/freecache"
	"github.com/goccy/go-json"
)

const dailyCacheSize = 1 << 20 // 1MB

// cachedQuestionUsecase memoizes daily selections per date. The selection is a
// pure function of the bank and the date, so entries only go stale when the
// bank changes.
type cachedQuestionUsecase struct {
	QuestionUsecase
	cache *freecache.Cache
	ttl   int
}

// NewCachedQuestionUsecase wraps inner with an in-process cache of daily
// selections. A non-positive ttl returns inner unchanged.
func NewCachedQuestionUsecase(inner QuestionUsecase, ttl time.Duration) QuestionUsecase {
	if ttl <= 0 {
		return inner
	}
	return &cachedQuestionUsecase{
		QuestionUsecase: inner,
		cache:           freecache.NewCache(dailyCacheSize),
		ttl:             max(int(ttl.Seconds()), 1),
	}
}

func (u *cachedQuestionUsecase) DailyQuestions(ctx context.Context, date string) ([]*domain.Question, error) {
	key := []byte("daily:" + date)
	if raw, err := u.cache.Get(key); err == nil {
		var cached []*domain.Question
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	}

	questions, err := u.QuestionUsecase.DailyQuestions(ctx, date)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(questions); err == nil {
		_ = u.cache.Set(key, raw, u.ttl)
	}
	return questions, nil
}

func (u *cachedQuestionUsecase) SeedIfEmpty(ctx context.Context, questions []*domain.Question) (int, error) {
	n, err := u.QuestionUsecase.SeedIfEmpty(ctx, questions)
	if n > 0 {
		u.cache.Clear()
	}
	return n, err
}
