package domain

import "time"

type Role string

const (
	RoleElderly   Role = "elderly"
	RoleCaretaker Role = "caretaker"
)

// User is the directory entry the mood pipeline consults. Registration and
// credentials live with the auth service that issues tokens.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Role        Role      `json:"role" gorm:"index;not null"`
	Age         int       `json:"age,omitempty"`
	CaretakerID *string   `json:"caretaker_id,omitempty" gorm:"index"` // Only set for elderly users
	CurrentMood string    `json:"current_mood" gorm:"default:neutral"`
	LastActive  time.Time `json:"last_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasCaretaker reports whether a caretaker is assigned.
func (u *User) HasCaretaker() bool {
	return u.CaretakerID != nil && *u.CaretakerID != ""
}
