package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/config"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
)

var DB *gorm.DB

// Connect opens the PostgreSQL pool and stores it in DB.
func Connect(cfg *config.Config) error {
	db, err := Open(postgres.Open(cfg.DSN()), logger.Warn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	DB = db
	slog.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)
	return nil
}

// Open wraps gorm.Open for any dialector. SQLite is used by tests and the
// CLI state file.
func Open(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
}

// Models lists every table owned by the service.
func Models() []interface{} {
	return []interface{}{
		&models.AccessGrant{},
		&models.PaymentRequest{},
		&models.DeviceSession{},
		&models.Download{},
		&models.KVEntry{},
		&models.SystemLog{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Ping reports whether DB answers. It fails when Connect was never called.
func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
