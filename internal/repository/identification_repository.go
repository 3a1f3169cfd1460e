package repository

import (
	"context"

	"verdant_backend/internal/model"

	"gorm.io/gorm"
)

type IdentificationRepository struct {
	DB *gorm.DB
}

func NewIdentificationRepository(db *gorm.DB) *IdentificationRepository {
	return &IdentificationRepository{DB: db}
}

func (r *IdentificationRepository) Create(ctx context.Context, identification *model.PlantIdentification) error {
	return r.DB.WithContext(ctx).Create(identification).Error
}

func (r *IdentificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.PlantIdentification, error) {
	items := []model.PlantIdentification{}
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("identified_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}
