package ports

import (
	"context"

	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository gives the core read access to warehouse records.
type WarehouseRepository interface {
	// Add persists a warehouse. Used by seeding and tests.
	Add(ctx context.Context, w *warehouse.Warehouse) error

	// GetAllActive returns the warehouses in Active status, ordered by name.
	// Coordinates are not checked; the router discards unusable ones.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)
}
