package queries

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/zoobzio/clockz"
)

// QuotePriceQueryHandler prices against the cached pricing snapshot and
// never touches order storage.
type QuotePriceQueryHandler struct {
	snapshots  ports.PricingSnapshotProvider
	calculator services.PriceCalculator
	clock      clockz.Clock
	logger     *slog.Logger
}

func NewQuotePriceQueryHandler(
	snapshots ports.PricingSnapshotProvider,
	clock clockz.Clock,
	logger *slog.Logger,
) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{
		snapshots:  snapshots,
		calculator: services.NewPriceCalculator(),
		clock:      clock,
		logger:     logger.With("component", "quote_price_handler"),
	}
}

// Handle normalises both cities against the configured ones and runs the
// pricing engine at the current clock time.
func (h QuotePriceQueryHandler) Handle(ctx context.Context, query QuotePriceQuery) (QuotePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuotePriceQueryResponse{}, err
	}

	cfg, err := h.snapshots.Snapshot(ctx)
	if err != nil {
		return QuotePriceQueryResponse{}, err
	}

	params := query.Params()
	params.OriginCity = services.NormalizeCity(params.OriginCity, cfg.Cities())
	params.DestinationCity = services.NormalizeCity(params.DestinationCity, cfg.Cities())

	routeAvailable := cfg.HasRoute(params.OriginCity, params.DestinationCity)
	if !routeAvailable {
		h.logger.DebugContext(ctx, "Quoting with default rates",
			"origin", params.OriginCity, "destination", params.DestinationCity)
	}

	breakdown, err := h.calculator.Calculate(params, cfg, h.clock.Now())
	if err != nil {
		return QuotePriceQueryResponse{}, err
	}

	return QuotePriceQueryResponse{
		OriginCity:      params.OriginCity,
		DestinationCity: params.DestinationCity,
		Breakdown:       breakdown,
		TotalCost:       pricing.FormatPrice(breakdown.TotalCost),
		RouteAvailable:  routeAvailable,
	}, nil
}
