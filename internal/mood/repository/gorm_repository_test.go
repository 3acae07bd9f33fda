package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"carecompanion-backend/internal/mood/domain"
	"carecompanion-backend/internal/testutil"
	"carecompanion-backend/pkg/ai"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var day = time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

func analyzed(userID string, mood ai.Mood, answer string) *domain.MoodEntry {
	legacy, score := domain.LegacyFor(mood)
	return &domain.MoodEntry{
		UserID:           userID,
		Date:             day,
		Mood:             legacy,
		MoodScore:        score,
		Emotions:         datatypes.JSONSlice[string]{"tired"},
		DetectedMood:     mood,
		Confidence:       ai.ConfidenceMedium,
		EmotionsDetected: datatypes.JSONSlice[string]{"tired"},
		Reason:           "test",
		AnalysisSource:   ai.SourceFallback,
		Responses:        datatypes.JSONSlice[ai.QuestionAnswer]{{Question: "How are you?", Answer: answer}},
	}
}

func TestMoodRepository_UpsertOverwritesSameDay(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t, &domain.MoodEntry{})
	repo := NewGormMoodRepository(db)

	first, err := repo.Upsert(ctx, analyzed("u1", ai.MoodNormal, "great"), domain.AnalysisColumns)
	require.NoError(t, err)

	second := analyzed("u1", ai.MoodDepressed, "awful")
	second.Responses = datatypes.JSONSlice[ai.QuestionAnswer]{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}
	got, err := repo.Upsert(ctx, second, domain.AnalysisColumns)
	require.NoError(t, err)

	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, ai.MoodDepressed, got.DetectedMood)
	assert.Equal(t, domain.LegacySad, got.Mood)
	assert.Equal(t, 2, got.MoodScore)
	assert.Len(t, got.Responses, 2)

	var count int64
	require.NoError(t, db.Model(&domain.MoodEntry{}).Where("user_id = ?", "u1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMoodRepository_SeparateUsersAndDays(t *testing.T) {
	ctx := context.Background()
	repo := NewGormMoodRepository(testutil.NewTestDB(t, &domain.MoodEntry{}))

	_, err := repo.Upsert(ctx, analyzed("u1", ai.MoodNormal, "a"), domain.AnalysisColumns)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, analyzed("u2", ai.MoodNormal, "b"), domain.AnalysisColumns)
	require.NoError(t, err)

	next := analyzed("u1", ai.MoodStressed, "c")
	next.Date = day.AddDate(0, 0, 1)
	_, err = repo.Upsert(ctx, next, domain.AnalysisColumns)
	require.NoError(t, err)

	entries, err := repo.FindSince(ctx, "u1", day)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Date.Equal(day))
	assert.Equal(t, ai.MoodStressed, entries[1].DetectedMood)

	later, err := repo.FindSince(ctx, "u1", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, later, 1)
}

func TestMoodRepository_FindByUserAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewGormMoodRepository(testutil.NewTestDB(t, &domain.MoodEntry{}))

	missing, err := repo.FindByUserAndDate(ctx, "u1", day)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Upsert(ctx, analyzed("u1", ai.MoodNormal, "fine"), domain.AnalysisColumns)
	require.NoError(t, err)

	// same instant expressed in another zone
	other := day.In(time.FixedZone("X", 3*3600))
	got, err := repo.FindByUserAndDate(ctx, "u1", other)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "fine", got.Responses[0].Answer)
}

func TestMoodRepository_ManualColumnsKeepClassification(t *testing.T) {
	ctx := context.Background()
	repo := NewGormMoodRepository(testutil.NewTestDB(t, &domain.MoodEntry{}))

	_, err := repo.Upsert(ctx, analyzed("u1", ai.MoodDepressed, "bad"), domain.AnalysisColumns)
	require.NoError(t, err)

	manual := &domain.MoodEntry{
		UserID:    "u1",
		Date:      day,
		Mood:      domain.LegacyNeutral,
		MoodScore: 5,
		Concerns:  datatypes.JSONSlice[string]{"sleep"},
		Responses: datatypes.JSONSlice[ai.QuestionAnswer]{{Question: "Q", Answer: "A"}},
	}
	got, err := repo.Upsert(ctx, manual, domain.ManualColumns)
	require.NoError(t, err)

	assert.Equal(t, ai.MoodDepressed, got.DetectedMood)
	assert.Equal(t, domain.LegacySad, got.Mood)
	assert.Equal(t, []string{"sleep"}, []string(got.Concerns))
	assert.Equal(t, "A", got.Responses[0].Answer)
}

// A rival insert landing between the lookup and our insert must turn into an update.
func TestMoodRepository_UpsertRecoversFromInsertRace(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t, &domain.MoodEntry{})
	repo := NewGormMoodRepository(db)

	fired := false
	var rivalID string
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:rival_insert", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*domain.MoodEntry); !ok {
			return
		}
		if fired {
			return
		}
		fired = true
		rival := analyzed("u1", ai.MoodNormal, "rival")
		rival.ID = uuid.New().String()
		rivalID = rival.ID
		require.NoError(t, db.Session(&gorm.Session{NewDB: true}).Create(rival).Error)
	}))

	got, err := repo.Upsert(ctx, analyzed("u1", ai.MoodHighlyDepressed, "mine"), domain.AnalysisColumns)
	require.NoError(t, err)
	assert.Equal(t, rivalID, got.ID)
	assert.Equal(t, ai.MoodHighlyDepressed, got.DetectedMood)
	assert.Equal(t, "mine", got.Responses[0].Answer)

	var count int64
	require.NoError(t, db.Model(&domain.MoodEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: mood_entries.user_id, mood_entries.date")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
}
