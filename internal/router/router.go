package router

import (
	"github.com/Karoll-e/career-boost/internal/ai"
	"github.com/Karoll-e/career-boost/internal/config"
	"github.com/Karoll-e/career-boost/internal/expcache"
	"github.com/Karoll-e/career-boost/internal/handler"
	"github.com/Karoll-e/career-boost/internal/middleware"
	"github.com/Karoll-e/career-boost/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the full API surface.
func SetupRouter(cfg *config.Config, db *gorm.DB, gen ai.Generator, cache *expcache.Manager) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	sessionStore := store.NewSessionStore(db)

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/auth/profile", authHandler.GetProfile)

	sessionHandler := handler.NewSessionHandler(sessionStore, gen, cache, cfg.App.QuestionCount)
	protected.POST("/sessions/create", sessionHandler.CreateSession)
	protected.GET("/sessions/my-sessions", sessionHandler.GetMySessions)
	protected.GET("/sessions/:id", sessionHandler.GetSession)
	protected.PUT("/sessions/:id", sessionHandler.UpdateSession)
	protected.DELETE("/sessions/:id", sessionHandler.DeleteSession)

	questionHandler := handler.NewQuestionHandler(sessionStore, gen, cfg.App.QuestionCount)
	protected.POST("/questions/add", questionHandler.AddQuestions)
	protected.POST("/questions/:id/pin", questionHandler.TogglePin)
	protected.POST("/questions/:id/note", questionHandler.UpdateNote)
	protected.POST("/questions/:id/review", questionHandler.ToggleReview)

	aiHandler := handler.NewAIHandler(gen, cache, sessionStore)
	protected.POST("/ai/generate-questions", aiHandler.GenerateQuestions)
	protected.POST("/ai/generate-explanation", aiHandler.GenerateExplanation)

	exportHandler := handler.NewExportHandler(sessionStore)
	protected.GET("/export/sessions/:id/csv", exportHandler.ExportCSV)
	protected.GET("/export/sessions/:id/xlsx", exportHandler.ExportXLSX)

	return r
}
