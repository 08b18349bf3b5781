// Package queries contains read-only operations. They bypass the domain
// aggregates and read straight from storage or the pricing snapshot.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its milestones for tracking.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
//	fmt.Printf("%s: %s (%s)\n", resp.ID, resp.Status, resp.TotalCost)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the tracking view of an order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	PickupAddress   string
	DropoffAddress  string
	OriginCity      string
	DestinationCity string
	DeliveryType    string
	Status          string
	// TotalCost is formatted with two decimals.
	TotalCost  string
	Waypoints  []string
	Milestones []MilestoneView
	CreatedAt  time.Time
}

// MilestoneView is one step of GetOrderQueryResponse. Coordinates are blank
// when the milestone has none.
type MilestoneView struct {
	Description    string
	Coordinates    string
	IsCompleted    bool
	ExecutionOrder int
	IsLast         bool
}
