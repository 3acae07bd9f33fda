package repository

import (
	"context"

	"carecompanion-backend/internal/notification/domain"
)

// NotificationRepository defines persistence for caretaker notifications
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error

	// ListByCaretaker returns the newest notifications first
	ListByCaretaker(ctx context.Context, caretakerID string, limit int) ([]*domain.Notification, error)

	CountUnread(ctx context.Context, caretakerID string) (int64, error)

	// MarkRead reports false when no notification with id belongs to caretakerID
	MarkRead(ctx context.Context, caretakerID, id string) (bool, error)

	// MarkAllRead returns the number of notifications changed
	MarkAllRead(ctx context.Context, caretakerID string) (int64, error)
}
