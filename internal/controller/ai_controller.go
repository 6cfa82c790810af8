package controller

import (
	"solo_quiz_backend/internal/model"
	"solo_quiz_backend/internal/service"
	"solo_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	Quiz *service.QuizService
}

func NewAIController(quiz *service.QuizService) *AIController {
	return &AIController{Quiz: quiz}
}

type hintRequest struct {
	Question string `json:"question" binding:"required"`
	Level    string `json:"level" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
}

// @Summary AI hint for the current question
// @Tags ai
// @Accept json
// @Produce json
// @Param body body hintRequest true "question context"
// @Success 200 {object} util.Response
// @Router /get_ai_hint [post]
func (c *AIController) GetHint(ctx *gin.Context) {
	var req hintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := model.ParseSOLOLevel(req.Level)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	hint := c.Quiz.Hint(ctx.Request.Context(), req.Question, level, req.Topic)
	util.Success(ctx, gin.H{"hint": hint})
}
