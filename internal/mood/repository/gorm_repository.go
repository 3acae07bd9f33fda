package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"carecompanion-backend/internal/mood/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// A lost insert race costs one extra round; more than that means something else is wrong.
const maxUpsertAttempts = 3

// gormMoodRepository implements MoodRepository using GORM
type gormMoodRepository struct {
	db *gorm.DB
}

// NewGormMoodRepository creates a new GORM-based MoodRepository
func NewGormMoodRepository(db *gorm.DB) MoodRepository {
	return &gormMoodRepository{db: db}
}

// Upsert is find-then-write rather than a single statement so the column set can
// differ between analysis and manual check-ins. The unique index on (user_id, date)
// arbitrates concurrent inserts; the loser re-reads and updates.
func (r *gormMoodRepository) Upsert(ctx context.Context, entry *domain.MoodEntry, columns []string) (*domain.MoodEntry, error) {
	entry.Date = entry.Date.UTC()

	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		existing, err := r.FindByUserAndDate(ctx, entry.UserID, entry.Date)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			entry.ID = existing.ID
			entry.CreatedAt = existing.CreatedAt
			entry.UpdatedAt = time.Now()
			if err := r.db.WithContext(ctx).Model(existing).Select(columns).Updates(entry).Error; err != nil {
				return nil, err
			}
			updated, err := r.FindByUserAndDate(ctx, entry.UserID, entry.Date)
			if err != nil {
				return nil, err
			}
			if updated != nil {
				return updated, nil
			}
			// deleted between update and read, go around again
			continue
		}

		entry.ID = uuid.New().String()
		now := time.Now()
		entry.CreatedAt = now
		entry.UpdatedAt = now

		err = r.db.WithContext(ctx).Create(entry).Error
		if err == nil {
			return entry, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
	}

	return nil, ErrPersistenceConflict
}

func (r *gormMoodRepository) FindByUserAndDate(ctx context.Context, userID string, day time.Time) (*domain.MoodEntry, error) {
	var entry domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day.UTC()).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormMoodRepository) FindSince(ctx context.Context, userID string, day time.Time) ([]*domain.MoodEntry, error) {
	var entries []*domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, day.UTC()).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint failed")
}
