package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carecompanion-backend/internal/question/domain"
	"carecompanion-backend/internal/question/usecase"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionUsecase struct {
	bank     []*domain.Question
	err      error
	lastDate string
}

func (f *fakeQuestionUsecase) DailyQuestions(_ context.Context, date string) ([]*domain.Question, error) {
	f.lastDate = date
	if f.err != nil {
		return nil, f.err
	}
	if len(f.bank) == 0 {
		return nil, usecase.ErrNoQuestionsAvailable
	}
	return usecase.SelectDaily(f.bank, date, usecase.DefaultDailyCount), nil
}

func (f *fakeQuestionUsecase) AllQuestions(context.Context) ([]*domain.Question, error) {
	return f.bank, f.err
}

func (f *fakeQuestionUsecase) SeedIfEmpty(context.Context, []*domain.Question) (int, error) {
	return 0, nil
}

func setup(uc usecase.QuestionUsecase, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuestionHandler(uc)
	h.now = func() time.Time { return now }
	r := gin.New()
	r.GET("/api/questions/daily", h.GetDailyQuestions)
	r.GET("/api/questions", h.GetAllQuestions)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func bank(n int) []*domain.Question {
	out := make([]*domain.Question, n)
	for i := range out {
		out[i] = &domain.Question{ID: fmt.Sprintf("id%d", i), QuestionText: fmt.Sprintf("q%d", i), Category: domain.CategorySocial, IsActive: true}
	}
	return out
}

func TestGetDailyQuestions_UsesUTCDate(t *testing.T) {
	uc := &fakeQuestionUsecase{bank: bank(10)}
	// 23:30 at UTC-5 is already the next day in UTC
	now := time.Date(2026, 2, 7, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	rec := get(setup(uc, now), "/api/questions/daily")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DailyQuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-02-08", resp.Date)
	assert.Equal(t, 5, resp.Count)
	ids := []string{}
	for _, q := range resp.Questions {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"id2", "id8", "id0", "id9", "id4"}, ids)
}

func TestGetDailyQuestions_DateOverride(t *testing.T) {
	uc := &fakeQuestionUsecase{bank: bank(10)}
	r := setup(uc, time.Now())

	assert.Equal(t, http.StatusOK, get(r, "/api/questions/daily?date=2025-01-01").Code)
	assert.Equal(t, "2025-01-01", uc.lastDate)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/questions/daily?date=tomorrow").Code)
}

func TestGetDailyQuestions_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(setup(&fakeQuestionUsecase{}, time.Now()), "/api/questions/daily").Code)

	failing := &fakeQuestionUsecase{err: errors.New("db down")}
	assert.Equal(t, http.StatusInternalServerError, get(setup(failing, time.Now()), "/api/questions/daily").Code)
}

func TestGetAllQuestions(t *testing.T) {
	rec := get(setup(&fakeQuestionUsecase{bank: bank(7)}, time.Now()), "/api/questions")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Count)
	assert.Len(t, resp.Questions, 7)
}
