package app

import (
	"solo_quiz_backend/docs"
	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/middleware"
	"solo_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	// quiz-taking flow, keyed by the session cookie
	quiz := router.Group("/")
	quiz.Use(middleware.SessionMiddleware())
	{
		quiz.GET("/", c.quiz.Home)
		quiz.GET("/start_quiz", c.quiz.StartQuiz)
		quiz.GET("/quiz", c.quiz.GetQuiz)
		quiz.POST("/submit_answer", c.quiz.SubmitAnswer)
		quiz.GET("/results", c.quiz.Results)
		quiz.POST("/get_ai_hint", c.ai.GetHint)
		quiz.GET("/progress", c.progress.GetProgress)
	}

	// catalog management
	router.POST("/api/admin/login", c.auth.Login)

	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))
	{
		admin.GET("/questions", c.question.List)
		admin.POST("/questions", c.question.Create)
		admin.POST("/questions/generate", c.question.Generate)
	}
}
