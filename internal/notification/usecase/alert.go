package usecase

import (
	"context"
	"fmt"

	authrepo "carecompanion-backend/internal/auth/repository"
	"carecompanion-backend/internal/notification/domain"
	"carecompanion-backend/internal/notification/repository"
	"carecompanion-backend/pkg/ai"
	"carecompanion-backend/pkg/logger"
	"carecompanion-backend/pkg/metrics"

	"gorm.io/datatypes"
)

// AlertDispatcher raises caretaker alerts for concerning analyses.
type AlertDispatcher interface {
	// MaybeNotify returns nil, nil when the mood is not concerning or no caretaker is assigned.
	// Every qualifying call creates a new notification.
	MaybeNotify(ctx context.Context, elderlyUserID string, result ai.MoodResult, moodEntryID string) (*domain.Notification, error)
}

type alertDispatcher struct {
	repo    repository.NotificationRepository
	users   authrepo.UserRepository
	log     *logger.Logger
	metrics metrics.Recorder
}

func NewAlertDispatcher(repo repository.NotificationRepository, users authrepo.UserRepository, log *logger.Logger, rec metrics.Recorder) AlertDispatcher {
	if rec == nil {
		rec = metrics.Noop()
	}
	return &alertDispatcher{
		repo:    repo,
		users:   users,
		log:     log.With("component", "AlertDispatcher"),
		metrics: rec,
	}
}

func (d *alertDispatcher) MaybeNotify(ctx context.Context, elderlyUserID string, result ai.MoodResult, moodEntryID string) (*domain.Notification, error) {
	if !IsConcerning(result.Mood) {
		d.log.Debug("mood is not concerning, skipping notification", "mood", result.Mood)
		return nil, nil
	}

	elderly, err := d.users.FindByID(ctx, elderlyUserID)
	if err != nil {
		return nil, fmt.Errorf("lookup elderly user: %w", err)
	}
	if elderly == nil || !elderly.HasCaretaker() {
		d.log.Info("no caretaker assigned, skipping notification", "user_id", elderlyUserID)
		return nil, nil
	}

	risk := RiskLevelFor(result.Mood)
	emotions := result.EmotionsDetected
	if emotions == nil {
		emotions = []string{}
	}
	n := &domain.Notification{
		CaretakerID:      *elderly.CaretakerID,
		ElderlyUserID:    elderlyUserID,
		Type:             domain.TypeMoodAlert,
		DetectedMood:     result.Mood,
		RiskLevel:        risk,
		Message:          BuildMessage(elderly.Name, result.Mood),
		EmotionsDetected: datatypes.JSONSlice[string](emotions),
		MoodEntryID:      moodEntryID,
	}
	if err := d.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	d.metrics.IncAlertsCreated(string(risk))
	d.log.Info("alert created", "caretaker_id", n.CaretakerID, "user_id", elderlyUserID, "mood", result.Mood, "risk_level", risk)
	return n, nil
}

// IsConcerning reports whether a mood warrants a caretaker alert.
func IsConcerning(m ai.Mood) bool {
	return m == ai.MoodDepressed || m == ai.MoodHighlyDepressed
}

func RiskLevelFor(m ai.Mood) domain.RiskLevel {
	switch m {
	case ai.MoodHighlyDepressed:
		return domain.RiskCritical
	case ai.MoodDepressed:
		return domain.RiskHigh
	case ai.MoodStressed:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func BuildMessage(name string, m ai.Mood) string {
	switch m {
	case ai.MoodHighlyDepressed:
		return fmt.Sprintf("URGENT: %s is showing signs of severe depression. Immediate attention recommended.", name)
	case ai.MoodDepressed:
		return fmt.Sprintf("ALERT: %s appears to be experiencing depression. Please check in with them soon.", name)
	case ai.MoodStressed:
		return fmt.Sprintf("NOTE: %s is showing signs of stress and anxiety. Consider reaching out.", name)
	default:
		return fmt.Sprintf("%s completed their daily check-in. Mood: %s.", name, m)
	}
}
