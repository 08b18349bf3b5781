package postgres

import (
	"fmt"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/pricingrepo"
	"logistics/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the postgres adapters.
func Models() []any {
	models := []any{
		&warehouserepo.WarehouseDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.MilestoneDTO{},
	}
	return append(models, pricingrepo.Models()...)
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
