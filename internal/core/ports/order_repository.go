// Package ports defines the contracts between the logistics core and its
// infrastructure: repositories, the unit of work, event publishing and the
// pricing snapshot source.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its milestones and price breakdown.
type OrderRepository interface {
	// Add persists a new order aggregate and its milestones.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and milestone completion of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a complete order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
