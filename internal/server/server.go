package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"isavralabel.com/sikus/internal/config"
	"isavralabel.com/sikus/internal/handler"
	"isavralabel.com/sikus/internal/middleware"
	"isavralabel.com/sikus/internal/repository"
	"isavralabel.com/sikus/internal/service"
	"isavralabel.com/sikus/internal/token"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

func NewServer(db *gorm.DB, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	adminService := service.NewAdminService(userRepo)
	userHandler := handler.NewUserHandler(adminService)

	reportService := service.NewReportService(reportRepo)
	exportService := service.NewExportService(reportRepo)
	reportHandler := handler.NewReportHandler(reportService, exportService)

	statService := service.NewStatService(userRepo, reportRepo)
	statHandler := handler.NewStatHandler(statService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/stats", statHandler.GetStats)

		protected.POST("/reports", reportHandler.Submit)
		protected.GET("/reports", reportHandler.List)

		admin := protected.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.PUT("/reports/:id/status", reportHandler.UpdateStatus)
			admin.GET("/reports/export", reportHandler.Export)

			admin.GET("/users", userHandler.List)
			admin.PUT("/users/:id/status", userHandler.UpdateStatus)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)
		}
	}

	return &Server{
		engine: router,
		cfg:    cfg,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for httptest servers.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:5173"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
