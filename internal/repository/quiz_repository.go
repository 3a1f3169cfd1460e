package repository

import (
	"context"

	"verdant_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateSession(ctx context.Context, session *model.QuizSession) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

func (r *QuizRepository) FindSessionByID(ctx context.Context, id string) (*model.QuizSession, error) {
	var session model.QuizSession
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *QuizRepository) CreateAttempt(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

// ListAttemptSummaries returns the newest attempts of a user first.
func (r *QuizRepository) ListAttemptSummaries(ctx context.Context, userID string, limit int) ([]model.QuizAttemptSummary, error) {
	summaries := []model.QuizAttemptSummary{}
	err := r.DB.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Select("id, score, total_questions, percentage, created_at").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}
