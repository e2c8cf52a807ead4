package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "flightops/frms/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection used by the user, passenger
// and roster repositories and migrates their tables.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	PgDB = db
	return db, nil
}

// AutoMigrate creates or updates the GORM-managed tables. Split out so
// tests can run it against an in-memory SQLite database.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Passenger{},
		&gormModels.Roster{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
