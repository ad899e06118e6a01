package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mroshb/edu_admissions/internal/config"
	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/repositories"
	"github.com/mroshb/edu_admissions/internal/security"
	"github.com/mroshb/edu_admissions/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully", "host", cfg.DBHost, "database", cfg.DBName)
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.University{},
		&models.Specialization{},
		&models.Application{},
		&models.AdminUser{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// SeedAdmin makes sure the configured admin account exists. The password of
// an existing account is left untouched so a changed password survives restarts.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminSeedEmail == "" || cfg.AdminSeedPassword == "" {
		logger.Info("No seed admin configured, skipping")
		return nil
	}

	hashed, err := security.HashPassword(cfg.AdminSeedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin := &models.AdminUser{
		Email:          strings.ToLower(strings.TrimSpace(cfg.AdminSeedEmail)),
		HashedPassword: hashed,
		Name:           cfg.AdminSeedName,
	}
	if err := repositories.NewAdminRepository(db).Upsert(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	logger.Info("Seed admin ready", "email", admin.Email)
	return nil
}
