package repository

import (
	"context"
	"errors"
	"time"

	"carecompanion-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormNotificationRepository implements NotificationRepository using GORM
type gormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository
func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *gormNotificationRepository) ListByCaretaker(ctx context.Context, caretakerID string, limit int) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.WithContext(ctx).
		Where("caretaker_id = ?", caretakerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) CountUnread(ctx context.Context, caretakerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("caretaker_id = ? AND is_read = ?", caretakerID, false).
		Count(&count).Error
	return count, err
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, caretakerID, id string) (bool, error) {
	var n domain.Notification
	err := r.db.WithContext(ctx).
		Where("id = ? AND caretaker_id = ?", id, caretakerID).
		Select("id").
		First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err = r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "updated_at": time.Now()}).Error
	return err == nil, err
}

func (r *gormNotificationRepository) MarkAllRead(ctx context.Context, caretakerID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("caretaker_id = ? AND is_read = ?", caretakerID, false).
		Updates(map[string]interface{}{"is_read": true, "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}
