package controller

import (
	"solo_quiz_backend/internal/service"
	"solo_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary List the full question catalog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questions, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Add a question to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionRequest true "question"
// @Success 201 {object} util.Response
// @Router /api/admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Create(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, q)
}

type generateQuestionRequest struct {
	Topic string `json:"topic" binding:"required"`
	Level string `json:"level" binding:"required"`
}

// @Summary Generate a candidate question with the AI collaborator
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body generateQuestionRequest true "topic and SOLO level"
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/admin/questions/generate [post]
func (c *QuestionController) Generate(ctx *gin.Context) {
	var req generateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Generate(ctx.Request.Context(), req.Topic, req.Level)
	if err != nil {
		// authoring is the one surface where a collaborator failure is
		// reported instead of masked: the admin needs to know generation failed
		util.Error(ctx, 502, "question generation failed: "+err.Error())
		return
	}

	util.Success(ctx, q)
}
