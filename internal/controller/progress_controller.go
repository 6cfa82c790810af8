package controller

import (
	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/middleware"
	"solo_quiz_backend/internal/service"
	"solo_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Perf     *service.PerformanceService
	Quiz     *service.QuizService
	settings *config.QuizSettings
}

func NewProgressController(perf *service.PerformanceService, quiz *service.QuizService, settings *config.QuizSettings) *ProgressController {
	return &ProgressController{Perf: perf, Quiz: quiz, settings: settings}
}

// @Summary Cross-session topic and level statistics from durable attempts
// @Tags quiz
// @Produce json
// @Param username query string false "restrict to one participant"
// @Success 200 {object} util.Response{data=model.ProgressReport}
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	username := ctx.Query("username")

	// with per-user scoping enabled the report defaults to the caller's own
	// history; the query parameter still overrides
	if username == "" && c.settings.ProgressPerUser() {
		if session, err := c.Quiz.Session(ctx.Request.Context(), middleware.SessionID(ctx)); err == nil {
			username = session.Username
		}
	}

	report, err := c.Perf.ProgressReport(username)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
