package controller

import (
	"errors"

	"verdant_backend/internal/model"
	"verdant_backend/internal/service"
	"verdant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type QuizGenerateResponse struct {
	Questions []model.QuizQuestion `json:"questions"`
}

// swagger:model QuizSubmitRequest
type QuizSubmitRequest struct {
	Answers []string `json:"answers"`
}

// GenerateQuiz godoc
// @Summary 生成园艺测验
// @Description 生成新测验并替换当前未提交的测验，返回题目不含答案
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} QuizGenerateResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /quiz/generate [get]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	questions, err := c.QuizService.Generate(ctx.Request.Context(), user.ID)
	if err != nil {
		util.LogInternalError(ctx, "Failed to generate quiz", err)
		return
	}
	util.Success(ctx, QuizGenerateResponse{Questions: questions})
}

// SubmitQuiz godoc
// @Summary 提交测验答案
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuizSubmitRequest true "按题目顺序的答案"
// @Success 200 {object} service.QuizResult
// @Failure 400 {object} util.ErrorResponse "没有进行中的测验"
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req QuizSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	result, err := c.QuizService.Submit(ctx.Request.Context(), user.ID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoActiveQuiz):
			util.BadRequest(ctx, "No active quiz session found")
		case errors.Is(err, util.ErrQuizSessionMissing):
			util.BadRequest(ctx, "Quiz session not found")
		default:
			util.LogInternalError(ctx, "Failed to submit quiz", err)
		}
		return
	}
	util.Success(ctx, result)
}

// QuizHistory godoc
// @Summary 测验历史
// @Description 最近 100 次，按时间倒序
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {array} model.QuizAttemptSummary
// @Router /quiz/history [get]
func (c *QuizController) QuizHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	history, err := c.QuizService.History(ctx.Request.Context(), user.ID)
	if err != nil {
		util.LogInternalError(ctx, "Failed to load quiz history", err)
		return
	}
	util.Success(ctx, history)
}
