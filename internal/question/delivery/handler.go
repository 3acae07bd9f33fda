package delivery

import (
	"errors"
	"net/http"
	"time"

	"carecompanion-backend/internal/question/domain"
	"carecompanion-backend/internal/question/usecase"

	"github.com/gin-gonic/gin"
)

const isoDate = "2006-01-02"

type QuestionHandler struct {
	questionUsecase usecase.QuestionUsecase
	now             func() time.Time
}

func NewQuestionHandler(questionUsecase usecase.QuestionUsecase) *QuestionHandler {
	return &QuestionHandler{
		questionUsecase: questionUsecase,
		now:             time.Now,
	}
}

type questionView struct {
	ID           string          `json:"id"`
	QuestionText string          `json:"questionText"`
	Category     domain.Category `json:"category"`
}

type DailyQuestionsResponse struct {
	Count     int            `json:"count"`
	Date      string         `json:"date"`
	Questions []questionView `json:"questions"`
}

type QuestionsResponse struct {
	Count     int            `json:"count"`
	Questions []questionView `json:"questions"`
}

func toViews(questions []*domain.Question) []questionView {
	out := make([]questionView, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionView{ID: q.ID, QuestionText: q.QuestionText, Category: q.Category})
	}
	return out
}

// GetDailyQuestions returns today's questions, keyed by the UTC date.
// GET /api/questions/daily?date=YYYY-MM-DD
func (h *QuestionHandler) GetDailyQuestions(c *gin.Context) {
	date := h.now().UTC().Format(isoDate)
	if override := c.Query("date"); override != "" {
		if _, err := time.Parse(isoDate, override); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = override
	}

	questions, err := h.questionUsecase.DailyQuestions(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, usecase.ErrNoQuestionsAvailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, DailyQuestionsResponse{
		Count:     len(questions),
		Date:      date,
		Questions: toViews(questions),
	})
}

// GetAllQuestions returns the active bank.
// GET /api/questions
func (h *QuestionHandler) GetAllQuestions(c *gin.Context) {
	questions, err := h.questionUsecase.AllQuestions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, QuestionsResponse{Count: len(questions), Questions: toViews(questions)})
}
