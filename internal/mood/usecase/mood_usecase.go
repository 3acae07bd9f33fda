package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	authdomain "carecompanion-backend/internal/auth/domain"
	authrepo "carecompanion-backend/internal/auth/repository"
	"carecompanion-backend/internal/mood/domain"
	"carecompanion-backend/internal/mood/repository"
	notifusecase "carecompanion-backend/internal/notification/usecase"
	"carecompanion-backend/pkg/ai"
	"carecompanion-backend/pkg/logger"

	"gorm.io/datatypes"
)

const isoDate = "2006-01-02"

// moodUsecase implements MoodUsecase interface
type moodUsecase struct {
	analyzer ai.MoodClassifier
	repo     repository.MoodRepository
	users    authrepo.UserRepository
	alerts   notifusecase.AlertDispatcher
	loc      *time.Location
	now      func() time.Time
	log      *logger.Logger
}

// NewMoodUsecase creates a new instance of moodUsecase. Day keys are midnight in loc.
func NewMoodUsecase(
	analyzer ai.MoodClassifier,
	repo repository.MoodRepository,
	users authrepo.UserRepository,
	alerts notifusecase.AlertDispatcher,
	loc *time.Location,
	log *logger.Logger,
) MoodUsecase {
	if loc == nil {
		loc = time.Local
	}
	return &moodUsecase{
		analyzer: analyzer,
		repo:     repo,
		users:    users,
		alerts:   alerts,
		loc:      loc,
		now:      time.Now,
		log:      log.With("component", "MoodUsecase"),
	}
}

func (u *moodUsecase) AnalyzeMood(ctx context.Context, userID string, answers []ai.QuestionAnswer) (*AnalysisSummary, error) {
	responses, err := normalizeAnswers(answers)
	if err != nil {
		return nil, err
	}

	u.log.Info("analyzing mood", "user_id", userID, "answer_count", len(responses))
	result := u.analyzer.Analyze(ctx, responses)

	// The classification is already paid for; keep it even if the caller went away.
	ctx = context.WithoutCancel(ctx)
	now := u.now()

	legacy, score := domain.LegacyFor(result.Mood)
	emotions := nonNil(result.EmotionsDetected)
	entry := &domain.MoodEntry{
		UserID:           userID,
		Date:             domain.DayKey(now, u.loc),
		Mood:             legacy,
		MoodScore:        score,
		Emotions:         datatypes.JSONSlice[string](emotions),
		Concerns:         datatypes.JSONSlice[string]{},
		DetectedMood:     result.Mood,
		Confidence:       result.Confidence,
		EmotionsDetected: datatypes.JSONSlice[string](emotions),
		Reason:           result.Reason,
		AnalysisSource:   result.AnalysisSource,
		Responses:        datatypes.JSONSlice[ai.QuestionAnswer](responses),
	}
	saved, err := u.repo.Upsert(ctx, entry, domain.AnalysisColumns)
	if err != nil {
		return nil, fmt.Errorf("save mood entry: %w", err)
	}

	if err := u.users.UpdateMoodStatus(ctx, userID, domain.CurrentMoodFor(result.Mood), now); err != nil {
		u.log.Warn("failed to update current mood", "user_id", userID, "error", err)
	}

	if u.alerts != nil {
		if _, err := u.alerts.MaybeNotify(ctx, userID, result, saved.ID); err != nil {
			u.log.Error("failed to notify caretaker", "user_id", userID, "entry_id", saved.ID, "error", err)
		}
	}

	result.EmotionsDetected = emotions
	return &AnalysisSummary{MoodResult: result, EntryID: saved.ID}, nil
}

func (u *moodUsecase) SaveEntry(ctx context.Context, userID string, in ManualEntry) (*domain.MoodEntry, error) {
	responses, err := normalizeAnswers(in.Responses)
	if err != nil {
		return nil, err
	}

	now := u.now()
	entry := &domain.MoodEntry{
		UserID:    userID,
		Date:      domain.DayKey(now, u.loc),
		Mood:      domain.LegacyNeutral,
		MoodScore: 5,
		Emotions:  datatypes.JSONSlice[string](nonNil(in.Emotions)),
		Concerns:  datatypes.JSONSlice[string](nonNil(in.Concerns)),
		Responses: datatypes.JSONSlice[ai.QuestionAnswer](responses),
	}
	columns := domain.ManualColumns

	if in.Mood != "" {
		entry.Mood = in.Mood
		if !entry.IsValidLegacyMood() {
			return nil, fmt.Errorf("%w: mood must be happy, sad or neutral", ErrInvalidEntry)
		}
		entry.MoodScore = in.MoodScore
		if entry.MoodScore == 0 {
			entry.MoodScore = domain.DefaultScore(in.Mood)
		}
		if entry.MoodScore < 1 || entry.MoodScore > 10 {
			return nil, fmt.Errorf("%w: moodScore must be between 1 and 10", ErrInvalidEntry)
		}
		columns = append([]string{"mood", "mood_score"}, columns...)
	}

	saved, err := u.repo.Upsert(ctx, entry, columns)
	if err != nil {
		return nil, fmt.Errorf("save mood entry: %w", err)
	}

	if in.Mood != "" {
		if err := u.users.UpdateMoodStatus(ctx, userID, string(in.Mood), now); err != nil {
			u.log.Warn("failed to update current mood", "user_id", userID, "error", err)
		}
	}
	return saved, nil
}

func (u *moodUsecase) MoodHistory(ctx context.Context, viewer Viewer, userID string, period Period) (*History, error) {
	if err := u.authorize(ctx, viewer, userID); err != nil {
		return nil, err
	}

	now := u.now().In(u.loc)
	start := domain.DayKey(now, u.loc).AddDate(0, 0, -period.Days())

	entries, err := u.repo.FindSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*domain.MoodEntry, len(entries))
	for _, e := range entries {
		byDay[e.Date.In(u.loc).Format(isoDate)] = e
	}

	history := &History{
		Period:    period,
		StartDate: start,
		EndDate:   now,
		Entries:   make([]DaySlot, 0, period.Days()+1),
		Summary:   summarize(entries),
	}
	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		key := day.Format(isoDate)
		slot := DaySlot{Date: key, Emotions: []string{}, Concerns: []string{}, Responses: []ai.QuestionAnswer{}}
		if e, ok := byDay[key]; ok {
			mood, score := e.Mood, e.MoodScore
			slot.Mood = &mood
			slot.MoodScore = &score
			slot.Emotions = nonNil(e.Emotions)
			slot.Concerns = nonNil(e.Concerns)
			slot.Responses = nonNil(e.Responses)
		}
		history.Entries = append(history.Entries, slot)
	}
	return history, nil
}

func (u *moodUsecase) CheckIn(ctx context.Context, viewer Viewer, userID, date string) (*CheckIn, error) {
	if err := u.authorize(ctx, viewer, userID); err != nil {
		return nil, err
	}

	day := domain.DayKey(u.now(), u.loc)
	if date != "" {
		parsed, err := time.ParseInLocation(isoDate, date, u.loc)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
	}

	entry, err := u.repo.FindByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	return &CheckIn{
		Date:             day.Format(isoDate),
		Mood:             entry.Mood,
		MoodScore:        entry.MoodScore,
		Emotions:         nonNil(entry.Emotions),
		Concerns:         nonNil(entry.Concerns),
		Responses:        nonNil(entry.Responses),
		DetectedMood:     entry.DetectedMood,
		Confidence:       entry.Confidence,
		EmotionsDetected: nonNil(entry.EmotionsDetected),
		Reason:           entry.Reason,
		AnalysisSource:   entry.AnalysisSource,
	}, nil
}

// authorize allows the user themself and their assigned caretaker.
func (u *moodUsecase) authorize(ctx context.Context, viewer Viewer, userID string) error {
	if viewer.ID == userID {
		return nil
	}
	if viewer.Role != authdomain.RoleCaretaker {
		return ErrForbidden
	}
	ok, err := u.users.IsCaretakerOf(ctx, viewer.ID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func summarize(entries []*domain.MoodEntry) HistorySummary {
	summary := HistorySummary{TotalEntries: len(entries), PredominantMood: "none"}
	if len(entries) == 0 {
		return summary
	}

	total, scored := 0, 0
	for _, e := range entries {
		if e.MoodScore > 0 {
			total += e.MoodScore
			scored++
		}
		switch e.Mood {
		case domain.LegacyHappy:
			summary.MoodCounts.Happy++
		case domain.LegacySad:
			summary.MoodCounts.Sad++
		case domain.LegacyNeutral:
			summary.MoodCounts.Neutral++
		}
	}
	if scored > 0 {
		summary.AverageScore = math.Round(float64(total)/float64(scored)*10) / 10
	}

	// Ties go to the later mood in happy, sad, neutral order.
	best, bestCount := domain.LegacyHappy, summary.MoodCounts.Happy
	if summary.MoodCounts.Sad >= bestCount {
		best, bestCount = domain.LegacySad, summary.MoodCounts.Sad
	}
	if summary.MoodCounts.Neutral >= bestCount {
		best = domain.LegacyNeutral
	}
	summary.PredominantMood = string(best)
	return summary
}

func normalizeAnswers(answers []ai.QuestionAnswer) ([]ai.QuestionAnswer, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	// Skipped questions stay in the list with an empty answer.
	out := make([]ai.QuestionAnswer, 0, len(answers))
	for _, qa := range answers {
		out = append(out, ai.QuestionAnswer{Question: qa.Question, Answer: qa.Answer, Category: qa.Category})
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
