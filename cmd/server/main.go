package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "hostelms/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hostelms/internal/auth"
	"hostelms/internal/cache"
	"hostelms/internal/config"
	"hostelms/internal/db"
	"hostelms/internal/handler"
	"hostelms/internal/model"
	"hostelms/internal/repository"
	"hostelms/internal/router"
	"hostelms/internal/service"
)

// @title Hostel Management API
// @version 1.0
// @description Role-based hostel management API with JWT authentication, hostels, reports, and settings.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Report{},
			&model.Hostel{},
			&model.Setting{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Hostel{},
		&model.Report{},
		&model.Setting{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	hostelRepo := repository.NewHostelRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	hostelService := service.NewHostelService(hostelRepo, cacheClient)
	reportService := service.NewReportService(reportRepo, hostelRepo, cacheClient)
	settingService := service.NewSettingService(settingRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	hostelHandler := handler.NewHostelHandler(hostelService)
	reportHandler := handler.NewReportHandler(reportService)
	settingHandler := handler.NewSettingHandler(settingService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		hostelHandler,
		reportHandler,
		settingHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
