package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction, so the pricing
// snapshot and warehouse list read by one command are consistent.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WarehouseRepository() WarehouseRepository
	PricingConfigRepository() PricingConfigRepository
}
