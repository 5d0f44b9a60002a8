package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/fortune-club/internal/config"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/models"
)

// DefaultRoles are created on startup when missing.
var DefaultRoles = []string{profile.RoleProvider, profile.RoleClient, identity.RoleAdmin}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := SeedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Skill{},
		&models.ProviderProfile{},
		&models.ClientProfile{},
		&models.Post{},
		&models.Comment{},
		&models.Conversation{},
		&models.Message{},
		&models.AuditLog{},
	)
}

func SeedRoles(db *gorm.DB) error {
	for _, name := range DefaultRoles {
		role := models.Role{Name: strings.ToLower(name)}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	return nil
}
