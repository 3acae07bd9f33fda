package domain

import (
	"time"

	"carecompanion-backend/pkg/ai"

	"gorm.io/datatypes"
)

type Type string

const (
	TypeMoodAlert   Type = "mood_alert"
	TypeHealthAlert Type = "health_alert"
	TypeGeneral     Type = "general"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Notification is a caretaker alert about one of their elderly users.
// Only IsRead changes after creation.
type Notification struct {
	ID               string                      `json:"id" gorm:"primaryKey"`
	CaretakerID      string                      `json:"caretaker_id" gorm:"not null;index:idx_notification_caretaker_read,priority:1;index:idx_notification_caretaker_created,priority:1"`
	ElderlyUserID    string                      `json:"elderly_user_id" gorm:"not null;index"`
	Type             Type                        `json:"type" gorm:"size:32;not null"`
	DetectedMood     ai.Mood                     `json:"detected_mood" gorm:"size:32;not null"`
	RiskLevel        RiskLevel                   `json:"risk_level" gorm:"size:16;not null"`
	Message          string                      `json:"message" gorm:"type:text;not null"`
	EmotionsDetected datatypes.JSONSlice[string] `json:"emotions_detected"`
	IsRead           bool                        `json:"is_read" gorm:"not null;index:idx_notification_caretaker_read,priority:2"`
	MoodEntryID      string                      `json:"mood_entry_id,omitempty" gorm:"index"`
	CreatedAt        time.Time                   `json:"created_at" gorm:"index:idx_notification_caretaker_created,priority:2,sort:desc"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}
