package controller

import (
	"errors"

	"verdant_backend/internal/repository"
	"verdant_backend/internal/service"
	"verdant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlantController struct {
	PlantService *service.PlantService
}

func NewPlantController(plantService *service.PlantService) *PlantController {
	return &PlantController{PlantService: plantService}
}

// ListPlants godoc
// @Summary 植物目录
// @Description 按分类和难度精确筛选
// @Tags 植物
// @Produce  json
// @Param category query string false "分类，如 Herb"
// @Param difficulty query string false "难度，如 Easy"
// @Success 200 {array} model.Plant
// @Router /plants [get]
func (c *PlantController) ListPlants(ctx *gin.Context) {
	filter := repository.PlantFilter{
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
	}

	plants, err := c.PlantService.List(ctx.Request.Context(), filter)
	if err != nil {
		util.LogInternalError(ctx, "Failed to list plants", err)
		return
	}
	util.Success(ctx, plants)
}

// GetPlant godoc
// @Summary 植物详情
// @Tags 植物
// @Produce  json
// @Param id path string true "植物ID"
// @Success 200 {object} model.Plant
// @Failure 404 {object} util.ErrorResponse
// @Router /plants/{id} [get]
func (c *PlantController) GetPlant(ctx *gin.Context) {
	plant, err := c.PlantService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPlantNotFound) {
			util.NotFound(ctx, "Plant not found")
		} else {
			util.LogInternalError(ctx, "Failed to load plant", err)
		}
		return
	}
	util.Success(ctx, plant)
}
