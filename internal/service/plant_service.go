package service

import (
	"context"
	"errors"

	"verdant_backend/internal/model"
	"verdant_backend/internal/repository"
	"verdant_backend/internal/util"
	"verdant_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PlantService struct {
	Repo *repository.PlantRepository
}

func NewPlantService(repo *repository.PlantRepository) *PlantService {
	return &PlantService{Repo: repo}
}

func (s *PlantService) List(ctx context.Context, filter repository.PlantFilter) ([]model.Plant, error) {
	return s.Repo.List(ctx, filter)
}

func (s *PlantService) Get(ctx context.Context, id string) (*model.Plant, error) {
	plant, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPlantNotFound
		}
		return nil, err
	}
	return plant, nil
}

// SeedIfEmpty inserts the default catalog only into an empty table.
func (s *PlantService) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	plants := DefaultPlants()
	if err := s.Repo.CreateBatch(ctx, plants); err != nil {
		return 0, err
	}
	logger.Log.Info("Plants seeded successfully", zap.Int("count", len(plants)))
	return len(plants), nil
}
