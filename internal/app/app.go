package app

import (
	"fmt"

	"giglink_backend/database"
	"giglink_backend/internal/config"
	"giglink_backend/internal/email"
	"giglink_backend/internal/handlers"
	"giglink_backend/internal/logger"
	"giglink_backend/internal/middleware"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/routes"
	"giglink_backend/internal/services"
	"giglink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
	logger.Info("migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := handlers.NewAppHandlers(validator.New(), serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(&email.Config{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
	} else {
		logger.Warn("no SMTP host configured, outbound email is a no-op")
		emailProvider = &MockEmailProvider{}
	}

	repos := services.Repositories{
		User:        repositories.NewUserRepository(gormDB),
		Profile:     repositories.NewProfileRepository(gormDB),
		Job:         repositories.NewJobRepository(gormDB),
		Application: repositories.NewApplicationRepository(gormDB),
		Connection:  repositories.NewConnectionRepository(gormDB),
		Post:        repositories.NewPostRepository(gormDB),
		Message:     repositories.NewMessageRepository(gormDB),
	}

	return services.NewServiceContainer(repos, emailProvider, cfg.Network.DiscoverLimit)
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
