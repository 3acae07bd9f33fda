package delivery

import (
	"errors"
	"net/http"

	authdelivery "carecompanion-backend/internal/auth/delivery"
	authdomain "carecompanion-backend/internal/auth/domain"
	"carecompanion-backend/internal/mood/usecase"
	"carecompanion-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

type MoodHandler struct {
	moodUsecase usecase.MoodUsecase
}

func NewMoodHandler(moodUsecase usecase.MoodUsecase) *MoodHandler {
	return &MoodHandler{moodUsecase: moodUsecase}
}

type AnalyzeMoodRequest struct {
	QuestionAnswers []ai.QuestionAnswer `json:"questionAnswers"`
}

// AnalyzeMood classifies the caller's check-in answers.
// POST /api/mood/analyze
func (h *MoodHandler) AnalyzeMood(c *gin.Context) {
	var req AnalyzeMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.moodUsecase.AnalyzeMood(c.Request.Context(), c.GetString(authdelivery.ContextUserID), req.QuestionAnswers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SaveMoodEntry records a self-reported check-in.
// POST /api/mood/entry
func (h *MoodHandler) SaveMoodEntry(c *gin.Context) {
	var req usecase.ManualEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.moodUsecase.SaveEntry(c.Request.Context(), c.GetString(authdelivery.ContextUserID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GetMoodHistory returns the day-by-day series for a user.
// GET /api/mood/history/:userId?period=weekly|monthly
func (h *MoodHandler) GetMoodHistory(c *gin.Context) {
	history, err := h.moodUsecase.MoodHistory(c.Request.Context(), viewer(c), c.Param("userId"), usecase.ParsePeriod(c.Query("period")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetCheckIn returns one day's answers for a user.
// GET /api/mood/checkin/:userId?date=YYYY-MM-DD
func (h *MoodHandler) GetCheckIn(c *gin.Context) {
	checkIn, err := h.moodUsecase.CheckIn(c.Request.Context(), viewer(c), c.Param("userId"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkIn)
}

func viewer(c *gin.Context) usecase.Viewer {
	return usecase.Viewer{
		ID:   c.GetString(authdelivery.ContextUserID),
		Role: authdomain.Role(c.GetString(authdelivery.ContextRole)),
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoAnswers),
		errors.Is(err, usecase.ErrInvalidEntry),
		errors.Is(err, usecase.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
