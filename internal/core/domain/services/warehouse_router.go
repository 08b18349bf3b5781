package services

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/warehouse"
)

const (
	// DefaultShortHopThresholdKm is the direct distance below which one facility serves both legs.
	DefaultShortHopThresholdKm = 20.0
	// DefaultLongHaulThresholdKm is the warehouse-to-warehouse distance from which PlanRoute adds on-path stops.
	DefaultLongHaulThresholdKm = 300.0
)

// Progress windows of the on-path stops, as fractions of the direct distance.
const (
	firstStopTarget  = 0.33
	secondStopTarget = 0.66

	firstWindowMin  = 0.2
	firstWindowMax  = 0.4
	secondWindowMin = 0.6
	secondWindowMax = 0.8
)

// ErrNoWarehousesAvailable is returned when no active warehouse with usable
// coordinates exists. Orders must not be created without a route.
var ErrNoWarehousesAvailable = errors.New("no warehouses available")

// RouteRequest locates the two ends of a shipment.
type RouteRequest struct {
	Sender          kernel.Location
	Receiver        kernel.Location
	OriginCity      string
	DestinationCity string
}

// RouterOption configures a WarehouseRouter.
type RouterOption func(*WarehouseRouter)

// WithShortHopThreshold overrides the single-facility distance in km.
func WithShortHopThreshold(km float64) RouterOption {
	return func(r *WarehouseRouter) {
		if km >= 0 {
			r.shortHopKm = km
		}
	}
}

// WithLongHaulThreshold overrides the distance in km from which PlanRoute looks
// for intermediate warehouses. Zero disables intermediates.
func WithLongHaulThreshold(km float64) RouterOption {
	return func(r *WarehouseRouter) {
		if km >= 0 {
			r.longHaulKm = km
		}
	}
}

// WarehouseRouter selects the warehouses a shipment passes through.
//
// Business rules:
//   - only active warehouses with coordinates other than (0,0) are considered
//   - the sender warehouse is the one closest to the sender
//   - short hops use the sender warehouse for both legs
//   - otherwise the receiver warehouse is the closest to the receiver, preferring
//     the destination city, and never the sender warehouse
//   - ties go to the warehouse listed first
type WarehouseRouter struct {
	shortHopKm float64
	longHaulKm float64
}

// NewWarehouseRouter creates a router with the default thresholds.
func NewWarehouseRouter(opts ...RouterOption) WarehouseRouter {
	r := WarehouseRouter{
		shortHopKm: DefaultShortHopThresholdKm,
		longHaulKm: DefaultLongHaulThresholdKm,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

type candidate struct {
	warehouse  *warehouse.Warehouse
	toSender   float64
	toReceiver float64
}

// FindRoute picks the sender and receiver warehouses.
//
// Returns:
//   - route.Route: a single-facility route for short hops or when only one
//     warehouse is usable, an origin-to-destination route otherwise
//   - error: ErrNoWarehousesAvailable, or a validation error for the request locations
func (r WarehouseRouter) FindRoute(req RouteRequest, warehouses []*warehouse.Warehouse) (route.Route, error) {
	if err := errors.Join(req.Sender.Validate(), req.Receiver.Validate()); err != nil {
		return route.Route{}, err
	}

	candidates := eligible(warehouses, req.Sender, req.Receiver)
	if len(candidates) == 0 {
		return route.Route{}, ErrNoWarehousesAvailable
	}

	senderSide := closest(candidates, func(c candidate) float64 { return c.toSender }, nil)

	direct := kernel.DistanceKm(req.Sender.Lat(), req.Sender.Lng(), req.Receiver.Lat(), req.Receiver.Lng())
	if direct < r.shortHopKm {
		return route.NewSingleFacility(senderSide.warehouse)
	}

	notSender := func(c candidate) bool { return !c.warehouse.IsEqual(senderSide.warehouse) }
	toReceiver := func(c candidate) float64 { return c.toReceiver }

	receiverSide := closest(candidates, toReceiver, func(c candidate) bool {
		return notSender(c) && c.warehouse.InCity(req.DestinationCity)
	})
	if receiverSide == nil {
		receiverSide = closest(candidates, toReceiver, notSender)
	}
	if receiverSide == nil {
		return route.NewSingleFacility(senderSide.warehouse)
	}

	return route.NewRoute(senderSide.warehouse, receiverSide.warehouse)
}

type scored struct {
	warehouse *warehouse.Warehouse
	ratio     float64
	score     float64
}

// FindIntermediateWarehouses selects up to two on-path stops between the origin
// and destination warehouses, ordered by progress along the path.
//
// Candidates in the origin or destination city are skipped. Each candidate is
// scored by its relative path deviation plus the distance of its progress ratio
// to the nearest of 1/3 and 2/3; lower is better. The best candidate in the
// [0.2, 0.4] window and the best in the [0.6, 0.8] window are picked. When
// neither window has one, the two best scores are used instead.
func (r WarehouseRouter) FindIntermediateWarehouses(
	origin, destination *warehouse.Warehouse,
	originCity, destinationCity string,
	warehouses []*warehouse.Warehouse,
) []*warehouse.Warehouse {
	if origin.Validate() != nil || destination.Validate() != nil {
		return nil
	}
	from, err := origin.Location()
	if err != nil {
		return nil
	}
	to, err := destination.Location()
	if err != nil {
		return nil
	}

	direct := kernel.DistanceKm(from.Lat(), from.Lng(), to.Lat(), to.Lng())
	if direct == 0 {
		return nil
	}

	var ranked []scored
	for _, w := range warehouses {
		if !w.IsEligible() || w.IsEqual(origin) || w.IsEqual(destination) ||
			w.InCity(originCity) || w.InCity(destinationCity) {
			continue
		}
		loc, err := w.Location()
		if err != nil {
			continue
		}

		fromOrigin := kernel.DistanceKm(from.Lat(), from.Lng(), loc.Lat(), loc.Lng())
		toDestination := kernel.DistanceKm(loc.Lat(), loc.Lng(), to.Lat(), to.Lng())
		ratio := fromOrigin / direct
		deviation := fromOrigin + toDestination - direct

		ranked = append(ranked, scored{
			warehouse: w,
			ratio:     ratio,
			score:     deviation/direct + math.Min(math.Abs(ratio-firstStopTarget), math.Abs(ratio-secondStopTarget)),
		})
	}
	if len(ranked) == 0 {
		return nil
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(a.score, b.score)
	})

	var picked []scored
	first := slices.IndexFunc(ranked, func(s scored) bool {
		return s.ratio >= firstWindowMin && s.ratio <= firstWindowMax
	})
	if first >= 0 {
		picked = append(picked, ranked[first])
	}
	second := slices.IndexFunc(ranked, func(s scored) bool {
		return s.ratio >= secondWindowMin && s.ratio <= secondWindowMax &&
			(first < 0 || !s.warehouse.IsEqual(ranked[first].warehouse))
	})
	if second >= 0 {
		picked = append(picked, ranked[second])
	}
	if len(picked) == 0 {
		picked = ranked[:min(route.MaxIntermediates, len(ranked))]
	}

	slices.SortStableFunc(picked, func(a, b scored) int {
		return cmp.Compare(a.ratio, b.ratio)
	})

	out := make([]*warehouse.Warehouse, 0, len(picked))
	for _, s := range picked {
		out = append(out, s.warehouse)
	}
	return out
}

// PlanRoute runs FindRoute and, for inter-city routes whose warehouses are at
// least the long-haul threshold apart, inserts intermediate warehouses.
func (r WarehouseRouter) PlanRoute(req RouteRequest, warehouses []*warehouse.Warehouse) (route.Route, error) {
	planned, err := r.FindRoute(req, warehouses)
	if err != nil {
		return route.Route{}, err
	}

	if r.longHaulKm == 0 || planned.IsSingleFacility() || sameCity(req.OriginCity, req.DestinationCity) {
		return planned, nil
	}

	from, err := planned.Origin().Location()
	if err != nil {
		return planned, nil
	}
	to, err := planned.Destination().Location()
	if err != nil {
		return planned, nil
	}
	if kernel.DistanceKm(from.Lat(), from.Lng(), to.Lat(), to.Lng()) < r.longHaulKm {
		return planned, nil
	}

	stops := r.FindIntermediateWarehouses(planned.Origin(), planned.Destination(),
		req.OriginCity, req.DestinationCity, warehouses)

	return planned.WithIntermediates(stops)
}

func eligible(warehouses []*warehouse.Warehouse, sender, receiver kernel.Location) []candidate {
	out := make([]candidate, 0, len(warehouses))
	for _, w := range warehouses {
		if !w.IsEligible() {
			continue
		}
		loc, err := w.Location()
		if err != nil {
			continue
		}
		out = append(out, candidate{
			warehouse:  w,
			toSender:   kernel.DistanceKm(sender.Lat(), sender.Lng(), loc.Lat(), loc.Lng()),
			toReceiver: kernel.DistanceKm(receiver.Lat(), receiver.Lng(), loc.Lat(), loc.Lng()),
		})
	}
	return out
}

// closest returns the candidate minimising dist among those accepted by keep
// (all when keep is nil). The first of equally distant candidates wins.
func closest(candidates []candidate, dist func(candidate) float64, keep func(candidate) bool) *candidate {
	var (
		best     *candidate
		shortest = math.Inf(1)
	)
	for i := range candidates {
		c := &candidates[i]
		if keep != nil && !keep(*c) {
			continue
		}
		if d := dist(*c); d < shortest {
			shortest = d
			best = c
		}
	}
	return best
}

func sameCity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
