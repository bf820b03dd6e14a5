package db

import (
	"fmt"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

// orderedModels lists every table in foreign-key dependency order: a table
// only ever references tables earlier in the slice. Migration walks it
// forward, Reset drops it backward.
func orderedModels() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Supplier{},
		&model.Category{},
		&model.Product{},
		&model.ProductCategory{},
		&model.ProductImage{},
		&model.Inventory{},
		&model.Address{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Review{},
		&model.PriceHistory{},
	}
}

// Migrate creates the schema one model at a time so that a misordered
// foreign-key reference fails immediately on the offending table instead of
// being deferred.
func Migrate(gdb *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := orderedModels()
	for _, m := range models {
		if err := gdb.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate model", err, map[string]interface{}{
				"model": fmt.Sprintf("%T", m),
			})
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Reset drops every table and recreates the schema from scratch. This is the
// destructive drop-first path: all existing data is lost.
func Reset(gdb *gorm.DB) error {
	logger.Warn("Resetting database schema, all data will be dropped")

	models := orderedModels()
	for i := len(models) - 1; i >= 0; i-- {
		if err := gdb.Migrator().DropTable(models[i]); err != nil {
			logger.Error("Failed to drop table", err, map[string]interface{}{
				"model": fmt.Sprintf("%T", models[i]),
			})
			return fmt.Errorf("drop %T: %w", models[i], err)
		}
	}

	return Migrate(gdb)
}
