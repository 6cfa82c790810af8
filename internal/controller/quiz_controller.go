package controller

import (
	"errors"
	"net/http"

	"solo_quiz_backend/internal/middleware"
	"solo_quiz_backend/internal/service"
	"solo_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary Landing page
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *QuizController) Home(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"name":        "SOLO Quiz",
		"description": "Knowledge Graph quiz ordered by the SOLO taxonomy",
		"startUrl":    "/start_quiz",
	})
}

// @Summary Start (or restart) a quiz for this session
// @Tags quiz
// @Param username query string false "participant label"
// @Success 302
// @Router /start_quiz [get]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	username := ctx.Query("username")

	if _, err := c.Service.StartQuiz(ctx.Request.Context(), middleware.SessionID(ctx), username); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/quiz")
}

// @Summary Current question for this session
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response{data=service.QuestionView}
// @Success 302
// @Router /quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	view, err := c.Service.CurrentQuestion(ctx.Request.Context(), middleware.SessionID(ctx))
	switch {
	case errors.Is(err, util.ErrNoActiveSession):
		ctx.Redirect(http.StatusFound, "/")
	case errors.Is(err, util.ErrQuizComplete):
		ctx.Redirect(http.StatusFound, "/results")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, view)
	}
}

type submitAnswerRequest struct {
	Answer        string `form:"answer" json:"answer"`
	QuestionIndex *int   `form:"question_index" json:"question_index" binding:"required"`
}

type submitAnswerResponse struct {
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
	AIFeedback  string `json:"ai_feedback"`
	NextURL     string `json:"next_url"`
}

// @Summary Submit the answer for the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body submitAnswerRequest true "selected option and its ordinal"
// @Success 200 {object} submitAnswerResponse
// @Failure 409 {object} util.Response
// @Router /submit_answer [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	var req submitAnswerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitAnswer(ctx.Request.Context(), middleware.SessionID(ctx), *req.QuestionIndex, req.Answer)
	switch {
	case errors.Is(err, util.ErrNoActiveSession):
		ctx.Redirect(http.StatusFound, "/")
	case errors.Is(err, util.ErrQuizComplete):
		ctx.Redirect(http.StatusFound, "/results")
	case errors.Is(err, util.ErrStaleSubmission):
		util.Conflict(ctx, "answer already recorded for this question")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		nextURL := "/quiz"
		if result.Finished {
			nextURL = "/results"
		}
		ctx.JSON(http.StatusOK, submitAnswerResponse{
			IsCorrect:   result.IsCorrect,
			Explanation: result.Explanation,
			AIFeedback:  result.AIFeedback,
			NextURL:     nextURL,
		})
	}
}

// @Summary Final score, per-level breakdown and AI analysis
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response{data=service.QuizResults}
// @Success 302
// @Router /results [get]
func (c *QuizController) Results(ctx *gin.Context) {
	results, err := c.Service.Results(ctx.Request.Context(), middleware.SessionID(ctx))
	switch {
	case errors.Is(err, util.ErrNoActiveSession):
		ctx.Redirect(http.StatusFound, "/")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, results)
	}
}
