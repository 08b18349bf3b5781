// Package commands contains the business operations that modify system state.
// Every handler validates its command, opens a unit of work, works through the
// repositories of that unit and commits.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WarehouseRepoFactory provides access to warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// PricingRepoFactory provides access to the pricing tables within a transaction.
	PricingRepoFactory interface {
		PricingConfigRepository() ports.PricingConfigRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans orders, warehouses and pricing, so order creation reads the
	// rate tables and warehouse list from the same transaction it writes in.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cfg, err := uow.PricingConfigRepository().Get(ctx)
	//   warehouses, err := uow.WarehouseRepository().GetAllActive(ctx)
	//   // ... price, route, build
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		WarehouseRepoFactory
		PricingRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
