package database

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Admiral-Simo/globalvaccinator/internal/config"
	"github.com/Admiral-Simo/globalvaccinator/internal/models"
)

// InitDB opens the postgres connection described by cfg and tunes its pool.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), gormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	return db, nil
}

// FromConn wraps an existing *sql.DB, e.g. a sqlmock connection.
func FromConn(conn *sql.DB, logLevel string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: conn}), gormConfig(logLevel))
}

func gormConfig(logLevel string) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(logLevel)),
		TranslateError: true,
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "warn", "info":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}

// Migrate brings the schema in line with the models according to mode.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case config.MigrationNone:
		return nil
	case config.MigrationDrop:
		if err := db.Migrator().DropTable(&models.Visit{}, &models.Record{}, &models.Patient{}); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	case config.MigrationAuto:
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}
	if err := db.AutoMigrate(&models.Patient{}, &models.Record{}, &models.Visit{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
