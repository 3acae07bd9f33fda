package domain

import "time"

// Category groups bank questions by the wellbeing area they probe.
type Category string

const (
	CategoryEmotional   Category = "emotional"
	CategorySocial      Category = "social"
	CategoryPhysical    Category = "physical"
	CategoryCognitive   Category = "cognitive"
	CategorySleep       Category = "sleep"
	CategoryDailyLiving Category = "daily-living"
	CategoryAnxiety     Category = "anxiety"
	CategorySelfEsteem  Category = "self-esteem"
)

// Question is one entry of the check-in question bank.
type Question struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	QuestionText string    `json:"question_text" gorm:"uniqueIndex;not null"`
	Category     Category  `json:"category" gorm:"index;not null"`
	IsActive     bool      `json:"is_active" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
