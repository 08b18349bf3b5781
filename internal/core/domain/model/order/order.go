package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMilestoneOutOfSequence is returned when completing a milestone before its predecessors.
	ErrMilestoneOutOfSequence = errors.New("previous milestones must be completed first")

	// ErrOrderIsDelivered is returned when mutating a delivered order.
	ErrOrderIsDelivered = errors.New("order is already delivered")
)

// Endpoints describes where a shipment is collected and delivered.
type Endpoints struct {
	PickupAddress   string
	Pickup          kernel.Location
	DropoffAddress  string
	Dropoff         kernel.Location
	OriginCity      string
	DestinationCity string
}

// Order is the aggregate root of a shipment: pricing input and result, the
// warehouse path and the milestone sequence.
//
// Invariants:
//   - pickup and dropoff locations are valid
//   - the breakdown total equals its components
//   - milestones satisfy ValidateSequence
//   - the status matches the completion state of the milestones
type Order struct {
	id         kernel.UUID
	endpoints  Endpoints
	params     pricing.Params
	breakdown  pricing.Breakdown
	waypoints  []kernel.UUID
	milestones []*Milestone
	status     Status

	isConstructed bool
}

// NewOrder creates an order in Created status.
//
// Parameters:
//   - id: order identifier
//   - endpoints: pickup/dropoff addresses, locations and resolved cities
//   - params: the pricing input the breakdown was computed from
//   - breakdown: the computed price
//   - waypoints: warehouse ids of the route in travel order
//   - milestones: the milestone sequence, only the first may be complete
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), endpoints, params, breakdown, waypoints, milestones)
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.UUID,
	endpoints Endpoints,
	params pricing.Params,
	breakdown pricing.Breakdown,
	waypoints []kernel.UUID,
	milestones []*Milestone,
) (*Order, error) {
	o, err := build(id, endpoints, params, breakdown, waypoints, milestones)
	if err != nil {
		return nil, err
	}

	if status := statusFor(o.milestones); status != Created {
		return nil, errs.NewValueIsInvalidErrorWithCause("milestones",
			fmt.Errorf("a new order must be in %s status, milestones imply %s", Created, status))
	}
	o.status = Created

	return o, nil
}

// RestoreOrder rebuilds an order from persistence and checks that the stored
// status agrees with the milestones.
func RestoreOrder(
	id kernel.UUID,
	endpoints Endpoints,
	params pricing.Params,
	breakdown pricing.Breakdown,
	waypoints []kernel.UUID,
	milestones []*Milestone,
	status Status,
) (*Order, error) {
	o, err := build(id, endpoints, params, breakdown, waypoints, milestones)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if derived := statusFor(o.milestones); derived != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("stored status %s does not match milestones (%s)", status, derived))
	}
	o.status = status

	return o, nil
}

func build(
	id kernel.UUID,
	endpoints Endpoints,
	params pricing.Params,
	breakdown pricing.Breakdown,
	waypoints []kernel.UUID,
	milestones []*Milestone,
) (*Order, error) {
	o := &Order{
		params:        params,
		breakdown:     breakdown,
		isConstructed: true,
	}
	o.breakdown.AdditionalFees = breakdown.Fees()

	if err := errors.Join(
		o.setID(id),
		o.setEndpoints(endpoints),
		o.setWaypoints(waypoints),
		o.setMilestones(milestones),
		breakdown.Check(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Endpoints returns pickup/dropoff information.
func (o *Order) Endpoints() Endpoints {
	return o.endpoints
}

// Params returns the pricing input.
func (o *Order) Params() pricing.Params {
	return o.params
}

// Breakdown returns a copy of the price breakdown.
func (o *Order) Breakdown() pricing.Breakdown {
	b := o.breakdown
	b.AdditionalFees = o.breakdown.Fees()
	return b
}

// Waypoints returns the route warehouse ids in travel order.
func (o *Order) Waypoints() []kernel.UUID {
	return slices.Clone(o.waypoints)
}

// Milestones returns the milestones in execution order.
func (o *Order) Milestones() []*Milestone {
	return slices.Clone(o.milestones)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// NextMilestone returns the first uncompleted milestone, or nil for delivered orders.
func (o *Order) NextMilestone() *Milestone {
	for _, m := range o.milestones {
		if !m.IsCompleted() {
			return m
		}
	}
	return nil
}

// CompleteMilestone marks the milestone with the given execution order as done.
//
// Business rules:
//   - the milestone must exist
//   - every earlier milestone must already be completed
//   - completing the last milestone delivers the order
func (o *Order) CompleteMilestone(executionOrder int) (*Milestone, error) {
	if o.status.IsFinal() {
		return nil, ErrOrderIsDelivered
	}

	idx := slices.IndexFunc(o.milestones, func(m *Milestone) bool {
		return m.ExecutionOrder() == executionOrder
	})
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("milestone", executionOrder)
	}

	target := o.milestones[idx]
	if target.IsCompleted() {
		return nil, ErrMilestoneAlreadyCompleted
	}
	for _, m := range o.milestones[:idx] {
		if !m.IsCompleted() {
			return nil, fmt.Errorf("%w: %q is pending", ErrMilestoneOutOfSequence, m.Description())
		}
	}

	if err := target.Complete(); err != nil {
		return nil, err
	}
	o.status = statusFor(o.milestones)

	return target, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setEndpoints(e Endpoints) error {
	e.PickupAddress = strings.TrimSpace(e.PickupAddress)
	e.DropoffAddress = strings.TrimSpace(e.DropoffAddress)
	e.OriginCity = strings.TrimSpace(e.OriginCity)
	e.DestinationCity = strings.TrimSpace(e.DestinationCity)

	var problems []error
	if err := e.Pickup.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("pickup: %w", err))
	}
	if err := e.Dropoff.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("dropoff: %w", err))
	}
	if e.OriginCity == "" {
		problems = append(problems, errs.NewValueIsRequiredError("origin city"))
	}
	if e.DestinationCity == "" {
		problems = append(problems, errs.NewValueIsRequiredError("destination city"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	o.endpoints = e
	return nil
}

func (o *Order) setWaypoints(waypoints []kernel.UUID) error {
	if len(waypoints) == 0 {
		return errs.NewValueIsRequiredError("route waypoints")
	}
	for _, id := range waypoints {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.waypoints = slices.Clone(waypoints)
	return nil
}

func (o *Order) setMilestones(milestones []*Milestone) error {
	if err := ValidateSequence(milestones); err != nil {
		return err
	}
	o.milestones = slices.Clone(milestones)
	return nil
}
