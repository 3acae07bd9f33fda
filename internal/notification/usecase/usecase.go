package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "carecompanion-backend/internal/auth/domain"
	authrepo "carecompanion-backend/internal/auth/repository"
	"carecompanion-backend/internal/notification/domain"
	"carecompanion-backend/internal/notification/repository"
	"carecompanion-backend/pkg/ai"

	"golang.org/x/sync/errgroup"
)

// InboxLimit caps how many notifications a caretaker sees at once.
const InboxLimit = 50

var ErrNotFound = errors.New("notification not found")

type ElderlyUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age,omitempty"`
}

type NotificationView struct {
	ID               string           `json:"id"`
	Type             domain.Type      `json:"type"`
	ElderlyUser      *ElderlyUser     `json:"elderlyUser"`
	DetectedMood     ai.Mood          `json:"detectedMood"`
	RiskLevel        domain.RiskLevel `json:"riskLevel"`
	Message          string           `json:"message"`
	EmotionsDetected []string         `json:"emotionsDetected"`
	IsRead           bool             `json:"isRead"`
	MoodEntryID      string           `json:"moodEntryId,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type Inbox struct {
	Notifications []NotificationView `json:"notifications"`
	UnreadCount   int64              `json:"unreadCount"`
}

// NotificationUsecase is the caretaker's read side of alerts
type NotificationUsecase interface {
	Inbox(ctx context.Context, caretakerID string) (*Inbox, error)
	MarkRead(ctx context.Context, caretakerID, id string) error
	MarkAllRead(ctx context.Context, caretakerID string) (int64, error)
}

type notificationUsecase struct {
	repo  repository.NotificationRepository
	users authrepo.UserRepository
}

func NewNotificationUsecase(repo repository.NotificationRepository, users authrepo.UserRepository) NotificationUsecase {
	return &notificationUsecase{repo: repo, users: users}
}

func (u *notificationUsecase) Inbox(ctx context.Context, caretakerID string) (*Inbox, error) {
	var (
		notifications []*domain.Notification
		unread        int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notifications, err = u.repo.ListByCaretaker(gctx, caretakerID, InboxLimit)
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = u.repo.CountUnread(gctx, caretakerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(notifications))
	seen := map[string]bool{}
	for _, n := range notifications {
		if !seen[n.ElderlyUserID] {
			seen[n.ElderlyUserID] = true
			ids = append(ids, n.ElderlyUserID)
		}
	}
	users, err := u.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*authdomain.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	inbox := &Inbox{Notifications: make([]NotificationView, 0, len(notifications)), UnreadCount: unread}
	for _, n := range notifications {
		view := NotificationView{
			ID:               n.ID,
			Type:             n.Type,
			DetectedMood:     n.DetectedMood,
			RiskLevel:        n.RiskLevel,
			Message:          n.Message,
			EmotionsDetected: []string(n.EmotionsDetected),
			IsRead:           n.IsRead,
			MoodEntryID:      n.MoodEntryID,
			CreatedAt:        n.CreatedAt,
		}
		if view.EmotionsDetected == nil {
			view.EmotionsDetected = []string{}
		}
		if user, ok := byID[n.ElderlyUserID]; ok {
			view.ElderlyUser = &ElderlyUser{ID: user.ID, Name: user.Name, Age: user.Age}
		}
		inbox.Notifications = append(inbox.Notifications, view)
	}
	return inbox, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, caretakerID, id string) error {
	ok, err := u.repo.MarkRead(ctx, caretakerID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, caretakerID string) (int64, error) {
	return u.repo.MarkAllRead(ctx, caretakerID)
}
