package migration

import (
	"fmt"

	"recipe-catalog/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates missing tables. Running it against an initialized store is a no-op.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrate recipes: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
