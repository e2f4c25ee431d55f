package migration

import (
	"Groeneweide-Backend/entities"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table in creation order; parents come before the
// tables that reference them.
func Models() []any {
	return []any{
		&entities.Category{},
		&entities.Product{},
		&entities.Recipe{},
		&entities.RecipePart{},
		&entities.Booking{},
		&entities.Locker{},
		&entities.Order{},
		&entities.OrderedProduct{},
	}
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("error migrating %T: %w", model, err)
		}
	}

	logger.Info("database migration complete", zap.Int("tables", len(Models())))
	return nil
}
