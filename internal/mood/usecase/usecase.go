package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "carecompanion-backend/internal/auth/domain"
	"carecompanion-backend/internal/mood/domain"
	"carecompanion-backend/pkg/ai"
)

var (
	ErrNoAnswers    = errors.New("question answers are required for mood analysis")
	ErrInvalidEntry = errors.New("invalid mood entry")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrNotFound     = errors.New("no check-in found for this date")
	ErrForbidden    = errors.New("not authorized to view this user")
)

type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Days is how far back a history window reaches from today.
func (p Period) Days() int {
	if p == PeriodMonthly {
		return 30
	}
	return 7
}

// ParsePeriod treats anything but "monthly" as weekly.
func ParsePeriod(s string) Period {
	if Period(s) == PeriodMonthly {
		return PeriodMonthly
	}
	return PeriodWeekly
}

// Viewer is the authenticated caller of a read operation.
type Viewer struct {
	ID   string
	Role authdomain.Role
}

// AnalysisSummary is what the caller gets back after submitting a check-in.
type AnalysisSummary struct {
	ai.MoodResult
	EntryID string `json:"entryId"`
}

// ManualEntry is a check-in recorded without classification.
type ManualEntry struct {
	Mood      domain.LegacyMood   `json:"mood"`
	MoodScore int                 `json:"moodScore"`
	Emotions  []string            `json:"emotions"`
	Concerns  []string            `json:"concerns"`
	Responses []ai.QuestionAnswer `json:"responses"`
}

type DaySlot struct {
	Date      string              `json:"date"`
	Mood      *domain.LegacyMood  `json:"mood"`
	MoodScore *int                `json:"moodScore"`
	Emotions  []string            `json:"emotions"`
	Concerns  []string            `json:"concerns"`
	Responses []ai.QuestionAnswer `json:"responses"`
}

type MoodCounts struct {
	Happy   int `json:"happy"`
	Sad     int `json:"sad"`
	Neutral int `json:"neutral"`
}

type HistorySummary struct {
	TotalEntries    int        `json:"totalEntries"`
	AverageScore    float64    `json:"averageScore"`
	MoodCounts      MoodCounts `json:"moodCounts"`
	PredominantMood string     `json:"predominantMood"`
}

type History struct {
	Period    Period         `json:"period"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	Entries   []DaySlot      `json:"entries"`
	Summary   HistorySummary `json:"summary"`
}

type CheckIn struct {
	Date      string              `json:"date"`
	Mood      domain.LegacyMood   `json:"mood"`
	MoodScore int                 `json:"moodScore"`
	Emotions  []string            `json:"emotions"`
	Concerns  []string            `json:"concerns"`
	Responses []ai.QuestionAnswer `json:"responses"`

	DetectedMood     ai.Mood       `json:"detectedMood,omitempty"`
	Confidence       ai.Confidence `json:"confidence,omitempty"`
	EmotionsDetected []string      `json:"emotionsDetected"`
	Reason           string        `json:"reason,omitempty"`
	AnalysisSource   ai.Source     `json:"analysisSource,omitempty"`
}

// MoodUsecase defines the interface for check-in analysis and history
type MoodUsecase interface {
	// AnalyzeMood classifies answers, stores today's entry and alerts the caretaker when warranted.
	// Only ErrNoAnswers and persistence failures are returned.
	AnalyzeMood(ctx context.Context, userID string, answers []ai.QuestionAnswer) (*AnalysisSummary, error)

	// SaveEntry stores today's entry from a self-reported mood, leaving any classification intact
	SaveEntry(ctx context.Context, userID string, in ManualEntry) (*domain.MoodEntry, error)

	// MoodHistory returns one slot per day of the period, ending today
	MoodHistory(ctx context.Context, viewer Viewer, userID string, period Period) (*History, error)

	// CheckIn returns the entry for date (YYYY-MM-DD, empty for today)
	CheckIn(ctx context.Context, viewer Viewer, userID, date string) (*CheckIn, error)
}
