// Package database owns the process-wide gorm engine and hands out scoped
// sessions, one per request.
package database

import (
	"context"
	"fmt"

	"recipe-catalog/domain"

	"gorm.io/gorm"
)

type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// DB exposes the engine for startup work such as schema initialization.
func (g *Gateway) DB() *gorm.DB {
	return g.db
}

// Begin opens a new unit of work bound to ctx. Callers must Close it,
// usually with defer right after the error check.
func (g *Gateway) Begin(ctx context.Context) (*Session, error) {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("%w: begin: %v", domain.ErrStorageUnavailable, tx.Error)
	}
	return &Session{tx: tx}, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Close releases the connection pool. Called once on shutdown.
func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
