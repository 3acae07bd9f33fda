package domain

import (
	"time"

	"carecompanion-backend/pkg/ai"

	"gorm.io/datatypes"
)

// LegacyMood is the three-way mood older dashboards read.
type LegacyMood string

const (
	LegacyHappy   LegacyMood = "happy"
	LegacySad     LegacyMood = "sad"
	LegacyNeutral LegacyMood = "neutral"
)

// MoodEntry is the single check-in record a user has for one calendar day.
type MoodEntry struct {
	ID     string    `json:"id" gorm:"primaryKey"`
	UserID string    `json:"user_id" gorm:"not null;uniqueIndex:idx_mood_user_day,priority:1"`
	Date   time.Time `json:"date" gorm:"not null;uniqueIndex:idx_mood_user_day,priority:2"`

	Mood      LegacyMood                  `json:"mood" gorm:"size:16;not null"`
	MoodScore int                         `json:"mood_score" gorm:"not null"`
	Emotions  datatypes.JSONSlice[string] `json:"emotions"`
	Concerns  datatypes.JSONSlice[string] `json:"concerns"`

	DetectedMood     ai.Mood                                `json:"detected_mood,omitempty" gorm:"size:32"`
	Confidence       ai.Confidence                          `json:"confidence,omitempty" gorm:"size:16"`
	EmotionsDetected datatypes.JSONSlice[string]            `json:"emotions_detected"`
	Reason           string                                 `json:"reason" gorm:"size:500"`
	AnalysisSource   ai.Source                              `json:"analysis_source,omitempty" gorm:"size:16"`
	Responses        datatypes.JSONSlice[ai.QuestionAnswer] `json:"responses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Columns overwritten when an existing day is re-analyzed.
var AnalysisColumns = []string{
	"mood", "mood_score", "emotions",
	"detected_mood", "confidence", "emotions_detected", "reason", "analysis_source",
	"responses", "updated_at",
}

// Columns overwritten by a manual check-in. Legacy mood is only replaced when supplied.
var ManualColumns = []string{"emotions", "concerns", "responses", "updated_at"}

// LegacyFor maps a classification onto the legacy mood and 1-10 score.
func LegacyFor(m ai.Mood) (LegacyMood, int) {
	switch m {
	case ai.MoodNormal:
		return LegacyHappy, 8
	case ai.MoodStressed:
		return LegacyNeutral, 4
	case ai.MoodDepressed:
		return LegacySad, 2
	case ai.MoodHighlyDepressed:
		return LegacySad, 1
	default:
		return LegacyNeutral, 5
	}
}

// DefaultScore is the score assumed for a manually reported mood with no score.
func DefaultScore(m LegacyMood) int {
	switch m {
	case LegacyHappy:
		return 8
	case LegacySad:
		return 3
	default:
		return 5
	}
}

// CurrentMoodFor is the status label written to the user directory after an analysis.
func CurrentMoodFor(m ai.Mood) string {
	switch m {
	case ai.MoodNormal:
		return "happy"
	case ai.MoodStressed:
		return "stressed"
	case ai.MoodDepressed, ai.MoodHighlyDepressed:
		return "depressed"
	default:
		return "neutral"
	}
}

// DayKey truncates t to midnight in loc.
func DayKey(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (e *MoodEntry) IsValidLegacyMood() bool {
	switch e.Mood {
	case LegacyHappy, LegacySad, LegacyNeutral:
		return true
	}
	return false
}
