package app

import (
	"errors"
	"fmt"
	"time"

	"adira_backend/database"
	"adira_backend/internal/auth"
	"adira_backend/internal/config"
	"adira_backend/internal/email"
	"adira_backend/internal/handlers"
	"adira_backend/internal/logger"
	"adira_backend/internal/middleware"
	"adira_backend/internal/models"
	"adira_backend/internal/repositories"
	"adira_backend/internal/routes"
	"adira_backend/internal/services"
	"adira_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func Run() {
	// .env удобен для локального запуска; в проде переменные приходят извне
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstStaff(gormDB, cfg); err != nil {
		// Без staff-пользователя каталог нечем наполнять - не стартуем
		logger.Fatal("Failed to seed first staff user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, using mock email provider")
		emailProvider = &MockEmailProvider{}
	} else {
		provider, err := email.NewSMTPProvider(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email provider", "error", err)
		}
		emailProvider = provider
	}

	issuer := auth.NewTokenIssuer(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTLMin)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour,
	)

	// Репозитории
	userRepo := repositories.NewUserRepository(gormDB)
	revokedRepo := repositories.NewRevokedTokenRepository(gormDB)
	productRepo := repositories.NewProductRepository(gormDB)

	// Сервисы
	authService := services.NewAuthService(userRepo, revokedRepo, issuer, emailProvider, cfg.App.BaseURL)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)

	// Хэндлеры
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, authService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, userService),
		ProductHandler: handlers.NewProductHandler(baseHandler, productService),
	}

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(
		ginRouter,
		appHandlers,
		middleware.AuthMiddleware(issuer),
		middleware.RequireStaff(userRepo),
	)

	return ginRouter
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	return router
}

// seedFirstStaff создает первого staff-пользователя из конфигурации.
// Регистрация через API staff-флаг не поднимает, так что без этого
// пользователя мутации каталога недоступны вовсе.
func seedFirstStaff(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials are not configured. Skipping staff seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", cfg.Admin.Email).First(&existing)
	if result.Error == nil {
		logger.Info("Staff user already exists. Skipping creation.", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for staff user: %w", result.Error)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash staff password: %w", err)
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}

	staff := &models.User{
		Username:      username,
		Email:         cfg.Admin.Email,
		PasswordHash:  hash,
		EmailVerified: true,
		IsStaff:       true,
		DateJoined:    time.Now(),
	}
	if err := db.Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff user: %w", err)
	}

	logger.Info("Created first staff user", "email", cfg.Admin.Email)
	return nil
}
