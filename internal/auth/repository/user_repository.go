package repository

import (
	"context"
	"errors"
	"time"

	authdomain "carecompanion-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository is the user directory consumed by the mood and alert flows.
type UserRepository interface {
	// Create inserts a user, assigning an id when empty
	Create(ctx context.Context, user *authdomain.User) error

	// FindByID returns nil, nil when the user does not exist
	FindByID(ctx context.Context, id string) (*authdomain.User, error)

	// FindByIDs returns the users that exist among ids, in no particular order
	FindByIDs(ctx context.Context, ids []string) ([]*authdomain.User, error)

	// UpdateMoodStatus records the latest current mood and activity time
	UpdateMoodStatus(ctx context.Context, id, currentMood string, at time.Time) error

	// IsCaretakerOf reports whether elderlyID is assigned to caretakerID
	IsCaretakerOf(ctx context.Context, caretakerID, elderlyID string) (bool, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.LastActive.IsZero() {
		user.LastActive = now
	}
	if user.CurrentMood == "" {
		user.CurrentMood = "neutral"
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*authdomain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*authdomain.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateMoodStatus(ctx context.Context, id, currentMood string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&authdomain.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_mood": currentMood,
			"last_active":  at,
			"updated_at":   time.Now(),
		}).Error
}

func (r *userRepository) IsCaretakerOf(ctx context.Context, caretakerID, elderlyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&authdomain.User{}).
		Where("id = ? AND caretaker_id = ?", elderlyID, caretakerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
