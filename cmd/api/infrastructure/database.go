package infrastructure

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-service/internal/adapter/db/postgres"
	"employee-service/internal/config"
	"employee-service/pkg/database"
)

// NewDatabase opens the GORM connection for the configured driver. It
// returns a nil DB for the memory driver.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	dbCfg := database.Config{
		MaxOpenConns:     cfg.DB.MaxOpenConns,
		MaxIdleConns:     cfg.DB.MaxIdleConns,
		ConnMaxLifetime:  time.Duration(cfg.DB.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime:  time.Duration(cfg.DB.ConnMaxIdleTime) * time.Second,
		SlowQuerySeconds: cfg.Logger.SlowQuerySeconds,
		LogLevel:         cfg.Logger.Level,
	}
	if cfg.DB.AutoMigrate {
		dbCfg.Models = postgres.Models()
	}

	switch cfg.DB.Driver {
	case config.DriverMemory:
		l.Info("using in-memory store, data is not persisted")
		return nil, nil
	case config.DriverSQLite:
		dbCfg.Dialect = database.DialectSQLite
		dbCfg.DSN = cfg.DB.SQLitePath
	default:
		dbCfg.Dialect = database.DialectPostgres
		dbCfg.DSN = cfg.DB.DSN()
	}

	db, err := database.Open(dbCfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", cfg.DB.Driver, err)
	}
	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	return database.Close(db)
}
