package ports

import (
	"context"

	"logistics/internal/core/domain/model/pricing"
)

// PricingConfigRepository materialises the rate tables into a pricing snapshot.
type PricingConfigRepository interface {
	// Get reads every rate table and returns an immutable snapshot.
	Get(ctx context.Context) (*pricing.Config, error)

	// Save replaces the stored rate tables.
	Save(ctx context.Context, tables pricing.Tables) error
}

// PricingSnapshotProvider serves the most recent pricing snapshot without
// touching storage on every call.
type PricingSnapshotProvider interface {
	Snapshot(ctx context.Context) (*pricing.Config, error)
}
