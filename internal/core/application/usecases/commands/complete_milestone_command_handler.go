package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/zoobzio/clockz"
)

// CompleteMilestoneCommandHandler records the progress of an order.
//
// Example:
//
//	handler := NewCompleteMilestoneCommandHandler(uowFactory, publisher, clockz.RealClock, logger)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrMilestoneOutOfSequence) {
//	    // an earlier milestone is still pending
//	}
type CompleteMilestoneCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      clockz.Clock
	logger     *slog.Logger
}

func NewCompleteMilestoneCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clock clockz.Clock,
	logger *slog.Logger,
) CompleteMilestoneCommandHandler {
	return CompleteMilestoneCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "complete_milestone_handler"),
	}
}

// Handle completes the milestone, stores the new status and publishes an
// order.milestone_completed event after commit.
func (h *CompleteMilestoneCommandHandler) Handle(ctx context.Context, cmd CompleteMilestoneCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	completed, err := o.CompleteMilestone(cmd.ExecutionOrder())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Milestone completed",
		"order_id", o.ID().String(), "milestone", completed.Description(), "status", o.Status().String())

	publishEvent(ctx, h.publisher, h.logger, ports.OrderEvent{
		Type:       ports.OrderMilestoneCompletedEvent,
		OrderID:    o.ID().String(),
		Status:     o.Status().String(),
		Milestone:  completed.Description(),
		OccurredAt: h.clock.Now(),
	})

	return o, nil
}
