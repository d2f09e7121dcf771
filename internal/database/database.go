package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keitamori/miniblog/internal/config"
	"github.com/keitamori/miniblog/internal/models"
)

var DB *gorm.DB

// Connect opens the configured database: postgres when DATABASE_URL is set,
// otherwise a local sqlite file.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		slog.Info("DATABASE_URL not set, falling back to sqlite", "path", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")
	return nil
}

// Migrate creates or updates the schema additively. Runs on every server start.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Reset drops and recreates all tables. Destructive; only the init-db command
// calls it.
func Reset() error {
	err := DB.Migrator().DropTable(
		&models.Comment{},
		&models.Article{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return Migrate()
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
