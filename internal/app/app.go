package app

import (
	"fmt"

	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/routes"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware into
// a ready gin engine. Tests call it directly with their own DB handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	portfolioRepo := repositories.NewPortfolioRepository()

	return &services.ServiceContainer{
		UserService:      services.NewUserService(userRepo),
		ProfileService:   services.NewProfileService(profileRepo, userRepo, portfolioRepo),
		PortfolioService: services.NewPortfolioService(portfolioRepo, profileRepo),
		SkillsService:    services.NewSkillsService(profileRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		UserHandler:      handlers.NewUserHandler(base, sc.UserService),
		ProfileHandler:   handlers.NewProfileHandler(base, sc.ProfileService),
		PortfolioHandler: handlers.NewPortfolioHandler(base, sc.PortfolioService),
		SkillsHandler:    handlers.NewSkillsHandler(base, sc.SkillsService),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}
