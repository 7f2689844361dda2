package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gigflow_backend/internal/config"
	"gigflow_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate brings the schema up to date for every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	return MigrateModels(db)
}

// MigrateModels runs the schema migration against the given database.
// Tests call this directly with an in-memory SQLite handle.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.RefreshToken{},
		&models.Gig{},
		&models.Order{},
		&models.Review{},
		&models.Message{},
		&models.Transaction{},
		&models.AuditLog{},
	)
}
