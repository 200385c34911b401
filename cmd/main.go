package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"prepdeck/config"
	"prepdeck/database"
	_ "prepdeck/docs" // Swagger docs - auto-generated
	userctrl "prepdeck/internal/controller/user"
	"prepdeck/internal/logger"
	"prepdeck/internal/middleware"
	"prepdeck/internal/model"
	"prepdeck/internal/repository"
	"prepdeck/internal/service"
	"prepdeck/internal/session"
)

// @title PrepDeck API
// @version 1.0
// @description Exam preparation API: timed test attempts with autosave and negative-marking scoring, free practice, bookmarks and progress tracking.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			session.NewManager,
		),

		// Repositories layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewCatalogRepository,
			repository.NewBookmarkRepository,
			repository.NewProgressRepository,
			repository.NewProfileRepository,
		),

		// Services layer
		fx.Provide(
			service.NewTestService,
			service.NewAttemptService,
			service.NewPracticeService,
			service.NewCatalogService,
			service.NewBookmarkService,
			service.NewProfileService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewTestController,
			userctrl.NewAttemptController,
			userctrl.NewPracticeController,
			userctrl.NewCatalogController,
			userctrl.NewBookmarkController,
			userctrl.NewProfileController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(MigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions *session.Manager,
	testCtrl *userctrl.TestController,
	attemptCtrl *userctrl.AttemptController,
	practiceCtrl *userctrl.PracticeController,
	catalogCtrl *userctrl.CatalogController,
	bookmarkCtrl *userctrl.BookmarkController,
	profileCtrl *userctrl.ProfileController,
) {
	api := router.Group("/api/v1")
	api.Use(middleware.RequireUser(cfg.Auth.JWTSecret))
	{
		// Test listing and attempt lifecycle
		api.GET("/tests", testCtrl.GetAllTests)
		api.GET("/tests/:test_id", testCtrl.GetTestDetails)
		api.GET("/tests/:test_id/my-attempts", testCtrl.GetMyTestAttempts)
		api.POST("/tests/:test_id/attempts", attemptCtrl.StartAttempt)
		api.POST("/attempts/:attempt_id/answers", attemptCtrl.SelectAnswer)
		api.POST("/attempts/:attempt_id/marks", attemptCtrl.ToggleMark)
		api.POST("/attempts/:attempt_id/navigate", attemptCtrl.Navigate)
		api.POST("/attempts/:attempt_id/submit", attemptCtrl.SubmitAttempt)
		api.GET("/attempts/recent", attemptCtrl.GetRecentAttempts)
		api.GET("/attempts/:attempt_id", attemptCtrl.GetAttemptResult)

		// Content catalog and free practice
		api.GET("/fields", catalogCtrl.GetFields)
		api.GET("/fields/:field_id/subjects", catalogCtrl.GetSubjects)
		api.GET("/subjects/:subject_id/topics", catalogCtrl.GetTopics)
		api.GET("/topics/:topic_id/questions", catalogCtrl.GetTopicQuestions)
		api.POST("/practice/answers", practiceCtrl.CheckAnswer)
		api.GET("/practice/progress", practiceCtrl.GetProgress)

		// Bookmarks and profile
		api.GET("/bookmarks", bookmarkCtrl.ListBookmarks)
		api.POST("/bookmarks", bookmarkCtrl.AddBookmark)
		api.DELETE("/bookmarks/:question_id", bookmarkCtrl.RemoveBookmark)
		api.GET("/profile", profileCtrl.GetProfile)
		api.PUT("/profile", profileCtrl.UpdateProfile)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PrepDeck API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			// Flush any in-memory attempt sessions before the listener dies.
			sessions.CloseAll()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func MigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Field{},
		&model.Subject{},
		&model.Topic{},
		&model.Question{},
		&model.Test{},
		&model.TestQuestion{},
		&model.TestAttempt{},
		&model.BookmarkedQuestion{},
		&model.UserProgress{},
		&model.Profile{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// Partial unique index: at most one open attempt per (user, test). AutoMigrate
	// cannot express the WHERE clause, so it is created directly.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_open_attempt
		ON test_attempts (user_id, test_id) WHERE completed_at IS NULL`).Error
	if err != nil {
		log.Error().Err(err).Msg("Creating open-attempt index failed")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
