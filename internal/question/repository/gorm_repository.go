package repository

import (
	"context"
	"time"

	"carecompanion-backend/internal/question/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormQuestionRepository implements QuestionRepository using GORM
type gormQuestionRepository struct {
	db *gorm.DB
}

// NewGormQuestionRepository creates a new GORM-based QuestionRepository
func NewGormQuestionRepository(db *gorm.DB) QuestionRepository {
	return &gormQuestionRepository{db: db}
}

func (r *gormQuestionRepository) Create(ctx context.Context, q *domain.Question) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	now := time.Now()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now
	return r.db.WithContext(ctx).Create(q).Error
}

// FindActive orders by created_at then id so the selector sees a stable sequence.
func (r *gormQuestionRepository) FindActive(ctx context.Context) ([]*domain.Question, error) {
	var questions []*domain.Question
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *gormQuestionRepository) FindActiveByCategory(ctx context.Context) ([]*domain.Question, error) {
	var questions []*domain.Question
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *gormQuestionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Question{}).Count(&count).Error
	return count, err
}
