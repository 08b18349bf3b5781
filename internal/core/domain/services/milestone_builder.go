package services

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/warehouse"
)

// Milestone descriptions shared by every order.
const (
	MilestoneOrderCreated   = "Order Created"
	MilestoneOrderAccepted  = "Order Accepted"
	MilestoneOrderAssigned  = "Order Assigned"
	MilestoneItemsCollected = "Items Collected"
	MilestoneInTransit      = "In Transit"
	MilestoneDelivered      = "Delivered to Customer"
)

// MilestoneBuilder turns a planned route into the milestone sequence of a new order.
type MilestoneBuilder struct{}

// NewMilestoneBuilder creates a MilestoneBuilder.
func NewMilestoneBuilder() MilestoneBuilder {
	return MilestoneBuilder{}
}

// Build returns the milestones of a new order in execution order:
//
//	Order Created → Order Accepted → Order Assigned → Items Collected → transit → Delivered to Customer
//
// The first four steps happen at the pickup location and are handled by the
// origin warehouse. In-city orders have a single "In Transit" step. Inter-city
// orders get one "Shipped (from X to Y)" step per leg between consecutive route
// warehouses, anchored at the warehouse the leg ends in. Only "Order Created"
// starts completed.
func (MilestoneBuilder) Build(
	pickup, dropoff kernel.Location,
	r route.Route,
	originCity, destinationCity string,
	isInCity bool,
) ([]*order.Milestone, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	originID := r.Origin().ID()
	var steps []step
	for _, description := range []string{
		MilestoneOrderCreated, MilestoneOrderAccepted, MilestoneOrderAssigned, MilestoneItemsCollected,
	} {
		steps = append(steps, step{description: description, coordinates: pickup, warehouseID: originID})
	}

	lastWarehouse := originID
	if isInCity {
		steps = append(steps, step{description: MilestoneInTransit, coordinates: pickup, warehouseID: originID})
	} else {
		legs, err := shippingLegs(r, originCity, destinationCity)
		if err != nil {
			return nil, err
		}
		steps = append(steps, legs...)
		lastWarehouse = r.Destination().ID()
	}

	steps = append(steps, step{description: MilestoneDelivered, coordinates: dropoff, warehouseID: lastWarehouse})

	out := make([]*order.Milestone, 0, len(steps))
	for i, s := range steps {
		m, err := order.NewMilestone(
			kernel.NewUUID(),
			s.description,
			&s.coordinates,
			&s.warehouseID,
			i+1,
			i == len(steps)-1,
			i == 0,
		)
		if err != nil {
			return nil, fmt.Errorf("milestone %q: %w", s.description, err)
		}
		out = append(out, m)
	}

	if err := order.ValidateSequence(out); err != nil {
		return nil, err
	}
	return out, nil
}

type step struct {
	description string
	coordinates kernel.Location
	warehouseID kernel.UUID
}

func shippingLegs(r route.Route, originCity, destinationCity string) ([]step, error) {
	waypoints := r.Warehouses()
	if len(waypoints) == 1 {
		waypoints = append(waypoints, waypoints[0])
	}

	legs := make([]step, 0, len(waypoints)-1)
	for i := 1; i < len(waypoints); i++ {
		from := cityOf(waypoints[i-1], originCity)
		if i == 1 {
			from = originCity
		}
		to := cityOf(waypoints[i], destinationCity)
		if i == len(waypoints)-1 {
			to = destinationCity
		}

		loc, err := waypoints[i].Location()
		if err != nil {
			return nil, fmt.Errorf("warehouse %s: %w", waypoints[i].ID(), err)
		}

		legs = append(legs, step{
			description: fmt.Sprintf("Shipped (from %s to %s)", from, to),
			coordinates: loc,
			warehouseID: waypoints[i].ID(),
		})
	}
	return legs, nil
}

func cityOf(w *warehouse.Warehouse, fallback string) string {
	if w.City() == "" {
		return fallback
	}
	return w.City()
}
