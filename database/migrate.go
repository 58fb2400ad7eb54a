package database

import (
	"fmt"

	"giglink_backend/internal/config"
	"giglink_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens (or returns the cached) GORM handle. TranslateError is
// required: the repositories rely on gorm.ErrDuplicatedKey to detect
// unique-index conflicts on applications, connections and user emails.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates the schema, including the unique indexes the lifecycle
// invariants depend on: applications (job_id, applicant_id) and connections
// pair_key, both declared on the models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Job{},
		&models.Application{},
		&models.Connection{},
		&models.Post{},
		&models.Message{},
	)
}
