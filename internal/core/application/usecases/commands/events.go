package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

// publishEvent delivers an event after commit. Failures are logged and
// swallowed: the state change is already durable.
func publishEvent(ctx context.Context, publisher ports.OrderEventPublisher, logger *slog.Logger, event ports.OrderEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish order event",
			"type", event.Type, "order_id", event.OrderID, "error", err)
	}
}
