package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"labvote/internal/config"
	"labvote/internal/http-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the database selected by the configuration and applies the
// schema. Postgres is used when DATABASE_URL carries a postgres scheme
// (the production setup); otherwise a local SQLite file is used.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(cfg.DatabaseURL, "postgres://"),
		strings.HasPrefix(cfg.DatabaseURL, "postgresql://"):
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath + "?_pragma=foreign_keys(1)")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully", "dialect", db.Name())
	return db, nil
}

// Migrate creates or updates the schema. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Week{},
		&models.Presentation{},
		&models.Vote{},
		&models.Rating{},
		&models.Comment{},
	)
}
