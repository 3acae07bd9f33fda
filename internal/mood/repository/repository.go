package repository

import (
	"context"
	"errors"
	"time"

	"carecompanion-backend/internal/mood/domain"
)

// ErrPersistenceConflict is returned when the day's row keeps changing under the upsert.
var ErrPersistenceConflict = errors.New("mood entry upsert conflict")

// MoodRepository stores one MoodEntry per user per day
type MoodRepository interface {
	// Upsert creates the entry for (UserID, Date) or overwrites columns of the existing one.
	// entry.Date must already be a day key.
	Upsert(ctx context.Context, entry *domain.MoodEntry, columns []string) (*domain.MoodEntry, error)

	// FindByUserAndDate returns nil, nil when the user has no entry that day
	FindByUserAndDate(ctx context.Context, userID string, day time.Time) (*domain.MoodEntry, error)

	// FindSince returns the user's entries from day onwards, oldest first
	FindSince(ctx context.Context, userID string, day time.Time) ([]*domain.MoodEntry, error)
}
