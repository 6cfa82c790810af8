package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/controller"
	"solo_quiz_backend/internal/repository"
	"solo_quiz_backend/internal/service"
	"solo_quiz_backend/internal/util"
	"solo_quiz_backend/pkg/database"
	"solo_quiz_backend/pkg/logger"
	"solo_quiz_backend/pkg/monitoring"
	"solo_quiz_backend/pkg/security"
	"solo_quiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	// hot-reloadable parts, swapped by ReloadConfig
	ai           *service.AIService
	quizSettings *config.QuizSettings
}

type repositories struct {
	question *repository.QuestionRepository
	attempt  *repository.AttemptRepository
}

type services struct {
	quiz        *service.QuizService
	performance *service.PerformanceService
	question    *service.QuestionService
	auth        *service.AuthService
}

type controllers struct {
	quiz     *controller.QuizController
	ai       *controller.AIController
	progress *controller.ProgressController
	question *controller.QuestionController
	auth     *controller.AuthController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question: repository.NewQuestionRepository(db),
		attempt:  repository.NewAttemptRepository(db),
	}
}

func (a *App) initSessionStore(cfg *config.Config) service.SessionStore {
	if cfg.Session.Store == util.SessionStoreRedis {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis session store", zap.Error(err))
		}
		return service.NewRedisSessionStore(rdb, cfg.Session.TTL)
	}
	return service.NewMemorySessionStore(cfg.Session.TTL)
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	ai := service.NewAIService(cfg.AI)
	a.ai = ai
	sessions := a.initSessionStore(cfg)

	s.performance = service.NewPerformanceService(repos.attempt)
	s.quiz = service.NewQuizService(sessions, repos.question, repos.attempt, ai, s.performance)
	s.question = service.NewQuestionService(repos.question, ai)
	s.auth = service.NewAuthService(cfg.Admin)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		quiz:     controller.NewQuizController(s.quiz),
		ai:       controller.NewAIController(s.quiz),
		progress: controller.NewProgressController(s.performance, s.quiz, a.quizSettings),
		question: controller.NewQuestionController(s.question),
		auth:     controller.NewAuthController(s.auth),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config:       cfg,
		DB:           db,
		quizSettings: config.NewQuizSettings(cfg.Quiz),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("solo-quiz-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

// ReloadConfig applies the fields that are safe to change at runtime.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.ai.SetConfig(cfg.AI)
	a.quizSettings.Set(cfg.Quiz)
	logger.Log.Info("configuration reloaded",
		zap.String("ai_model", cfg.AI.Model),
		zap.Bool("progress_per_user", cfg.Quiz.ProgressPerUser))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
