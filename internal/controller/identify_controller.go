package controller

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"verdant_backend/internal/service"
	"verdant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type IdentifyController struct {
	IdentificationService *service.IdentificationService
	// UploadRoot 本地归档目录，为空时不提供图片下载
	UploadRoot string
}

func NewIdentifyController(identificationService *service.IdentificationService) *IdentifyController {
	return &IdentifyController{IdentificationService: identificationService}
}

// swagger:model IdentifyRequest
type IdentifyRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// IdentifyPlant godoc
// @Summary 拍照识别植物
// @Description 图片以 base64 上传，可带 data URL 前缀
// @Tags 植物识别
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body IdentifyRequest true "图片"
// @Success 200 {object} model.PlantIdentification
// @Failure 400 {object} util.ErrorResponse "图片不是合法的 base64"
// @Failure 500 {object} util.ErrorResponse "识别失败"
// @Router /identify-plant [post]
func (c *IdentifyController) IdentifyPlant(ctx *gin.Context) {
	var req IdentifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	result, err := c.IdentificationService.Identify(ctx.Request.Context(), user.ID, req.ImageBase64)
	if err != nil {
		if errors.Is(err, util.ErrInvalidImage) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, "Failed to identify plant", err)
		}
		return
	}
	util.Success(ctx, result)
}

// ListIdentifications godoc
// @Summary 我的识别记录
// @Tags 植物识别
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {array} model.PlantIdentification
// @Router /identifications [get]
func (c *IdentifyController) ListIdentifications(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	items, err := c.IdentificationService.History(ctx.Request.Context(), user.ID)
	if err != nil {
		util.LogInternalError(ctx, "Failed to load identifications", err)
		return
	}
	util.Success(ctx, items)
}

// ServeUpload 返回本地归档的识别图片，只允许访问自己目录下的文件
func (c *IdentifyController) ServeUpload(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	key := path.Clean("/" + ctx.Param("filepath"))
	if c.UploadRoot == "" || !strings.HasPrefix(key, "/identifications/"+user.ID+"/") {
		util.NotFound(ctx, "Image not found")
		return
	}

	file := filepath.Join(c.UploadRoot, filepath.FromSlash(strings.TrimPrefix(key, "/")))
	if _, err := os.Stat(file); err != nil {
		util.NotFound(ctx, "Image not found")
		return
	}
	ctx.File(file)
}
