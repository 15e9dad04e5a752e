package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the process-wide engine and verifies the store answers.
func ConnectDB(cfg utils.Config) (*gorm.DB, error) {
	return OpenDB(postgres.Open(cfg.DSN()), cfg)
}

// OpenDB is ConnectDB with the dialector supplied by the caller.
func OpenDB(dialector gorm.Dialector, cfg utils.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", domain.ErrStorageUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", domain.ErrStorageUnavailable, err)
	}
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
