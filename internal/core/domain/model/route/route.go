// Package route holds the warehouse path chosen for one shipment.
package route

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// MaxIntermediates is the number of on-path stops a route may carry.
const MaxIntermediates = 2

// ErrRouteIsNotConstructed is returned when a zero-value Route is used.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewSingleFacility or NewRoute")

// Route is the ordered list of warehouses a shipment passes through:
// an origin, up to two intermediates and an optional destination. A route
// without a destination uses the origin facility for both legs.
type Route struct {
	origin        *warehouse.Warehouse
	intermediates []*warehouse.Warehouse
	destination   *warehouse.Warehouse
	guard         guard.ConstructorGuard
}

// NewSingleFacility builds a route that uses one warehouse for pickup and delivery.
func NewSingleFacility(origin *warehouse.Warehouse) (Route, error) {
	if err := origin.Validate(); err != nil {
		return Route{}, err
	}
	return Route{origin: origin, guard: guard.NewConstructorGuard()}, nil
}

// NewRoute builds an origin-to-destination route. The two warehouses may be the same.
func NewRoute(origin, destination *warehouse.Warehouse) (Route, error) {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return Route{}, err
	}
	return Route{origin: origin, destination: destination, guard: guard.NewConstructorGuard()}, nil
}

// WithIntermediates returns a copy of the route with the given on-path stops
// inserted between origin and destination, in the given order.
func (r Route) WithIntermediates(stops []*warehouse.Warehouse) (Route, error) {
	if err := r.Validate(); err != nil {
		return Route{}, err
	}
	if len(stops) == 0 {
		return r, nil
	}
	if r.destination == nil {
		return Route{}, errs.NewValueIsInvalidError("intermediate stops require a destination warehouse")
	}
	if len(stops) > MaxIntermediates {
		return Route{}, errs.NewValueIsOutOfRangeError("intermediate stops", len(stops), 0, MaxIntermediates)
	}
	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return Route{}, err
		}
	}

	out := r
	out.intermediates = slices.Clone(stops)
	return out, nil
}

// Validate reports whether the route was built by a constructor.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Origin returns the sender-side warehouse.
func (r Route) Origin() *warehouse.Warehouse {
	return r.origin
}

// Destination returns the receiver-side warehouse, which is the origin for single-facility routes.
func (r Route) Destination() *warehouse.Warehouse {
	if r.destination == nil {
		return r.origin
	}
	return r.destination
}

// Intermediates returns the on-path stops in travel order.
func (r Route) Intermediates() []*warehouse.Warehouse {
	return slices.Clone(r.intermediates)
}

// IsSingleFacility reports whether one warehouse serves both legs.
func (r Route) IsSingleFacility() bool {
	return r.destination == nil
}

// Warehouses returns every waypoint in travel order: origin, intermediates, destination.
func (r Route) Warehouses() []*warehouse.Warehouse {
	if r.origin == nil {
		return nil
	}
	out := make([]*warehouse.Warehouse, 0, 2+len(r.intermediates))
	out = append(out, r.origin)
	out = append(out, r.intermediates...)
	if r.destination != nil {
		out = append(out, r.destination)
	}
	return out
}
