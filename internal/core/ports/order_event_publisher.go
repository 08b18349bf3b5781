package ports

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderCreatedEvent            = "order.created"
	OrderMilestoneCompletedEvent = "order.milestone_completed"
)

// OrderEvent notifies collaborators of order changes after they were committed.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	TotalCost  string    `json:"totalCost,omitempty"`
	Milestone  string    `json:"milestone,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher delivers order events to subscribers. Delivery is best
// effort; callers log failures and carry on.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
