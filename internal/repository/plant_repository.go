package repository

import (
	"context"

	"verdant_backend/internal/model"

	"gorm.io/gorm"
)

type PlantRepository struct {
	DB *gorm.DB
}

func NewPlantRepository(db *gorm.DB) *PlantRepository {
	return &PlantRepository{DB: db}
}

// PlantFilter holds optional exact-match filters; empty fields are ignored.
type PlantFilter struct {
	Category   string
	Difficulty string
}

const maxPlantList = 1000

func (r *PlantRepository) List(ctx context.Context, filter PlantFilter) ([]model.Plant, error) {
	query := r.DB.WithContext(ctx).Model(&model.Plant{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	plants := []model.Plant{}
	err := query.Order("name asc").Limit(maxPlantList).Find(&plants).Error
	return plants, err
}

func (r *PlantRepository) FindByID(ctx context.Context, id string) (*model.Plant, error) {
	var plant model.Plant
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&plant).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Plant{}).Count(&count).Error
	return count, err
}

func (r *PlantRepository) CreateBatch(ctx context.Context, plants []model.Plant) error {
	return r.DB.WithContext(ctx).Create(&plants).Error
}
