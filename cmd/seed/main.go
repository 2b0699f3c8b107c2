package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelms/internal/config"
	"hostelms/internal/db"
	"hostelms/internal/model"
	"hostelms/internal/repository"
	"hostelms/internal/service"
)

// defaultSetting is a baseline configuration record provisioned on first run.
type defaultSetting struct {
	Key         string
	Value       interface{}
	Description string
	DataType    string
}

var defaultSettings = []defaultSetting{
	{Key: "siteName", Value: "Hostel Management System", Description: "Display name of the site", DataType: model.DataTypeString},
	{Key: "maintenanceMode", Value: false, Description: "Disable user-facing operations when true", DataType: model.DataTypeBoolean},
	{Key: "maxBookingsPerUser", Value: float64(3), Description: "Upper bound on simultaneous bookings", DataType: model.DataTypeNumber},
	{Key: "supportEmail", Value: "support@hostelms.local", Description: "Contact address shown to users", DataType: model.DataTypeString},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Setting{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)
	settingService := service.NewSettingService(settingRepo, nil)
	ctx := context.Background()

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, skipped, err := seedSettings(ctx, settingService)
	if err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New settings created: %d", created)
	log.Printf("  - Existing settings left untouched: %d", skipped)
}

// seedAdmin provisions the default admin account, idempotent by email.
func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	email := envOr("ADMIN_EMAIL", "admin@hostelms.local")
	password := envOr("ADMIN_PASSWORD", "admin123")

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		log.Printf("Admin user already present: %s", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user created: %s", email)
	return nil
}

// seedSettings provisions the missing baseline settings. Keys that already
// exist are skipped so operator customizations survive re-runs.
func seedSettings(ctx context.Context, svc service.SettingService) (created int, skipped int, err error) {
	for _, s := range defaultSettings {
		if _, err := svc.GetByKey(ctx, s.Key); err == nil {
			skipped++
			continue
		}

		desc := s.Description
		dataType := s.DataType
		if _, err := svc.UpsertByKey(ctx, s.Key, service.UpsertSettingInput{
			Value:       s.Value,
			Description: &desc,
			DataType:    &dataType,
		}); err != nil {
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
