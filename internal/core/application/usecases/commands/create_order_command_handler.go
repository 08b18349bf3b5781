package commands

import (
	"context"
	"log/slog"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/zoobzio/clockz"
)

// CreateOrderResult is the outcome of a successful order creation.
type CreateOrderResult struct {
	Order *order.Order
	// CityDefaulted reports that the origin or destination city could not be
	// resolved and the default city was used.
	CityDefaulted bool
}

// CreateOrderCommandHandler prices, routes and persists new orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, router, clockz.RealClock, "Addis Ababa", logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(pricing.FormatPrice(result.Order.Breakdown().TotalCost))
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	publisher   ports.OrderEventPublisher
	router      services.WarehouseRouter
	calculator  services.PriceCalculator
	builder     services.MilestoneBuilder
	clock       clockz.Clock
	defaultCity string
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The clock decides peak-hour pricing; defaultCity is used when a city cannot
// be resolved.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	router services.WarehouseRouter,
	clock clockz.Clock,
	defaultCity string,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		publisher:   publisher,
		router:      router,
		calculator:  services.NewPriceCalculator(),
		builder:     services.NewMilestoneBuilder(),
		clock:       clock,
		defaultCity: strings.TrimSpace(defaultCity),
		logger:      logger.With("component", "create_order_handler"),
	}
}

// Handle reads the pricing snapshot and the active warehouses in one
// transaction, resolves both cities, prices the shipment, plans its route,
// builds the milestones and stores the order. An order.created event is
// published after commit; publishing failures are logged only.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cfg, err := uow.PricingConfigRepository().Get(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	warehouses, err := uow.WarehouseRepository().GetAllActive(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	knownCities := cfg.Cities()
	originCity, originDefaulted := h.resolveCity(ctx, "origin",
		cmd.OriginCityHint(), cmd.PickupAddress(), cmd.Pickup(), knownCities, warehouses)
	destinationCity, destinationDefaulted := h.resolveCity(ctx, "destination",
		cmd.DestinationCityHint(), cmd.DropoffAddress(), cmd.Dropoff(), knownCities, warehouses)

	if !cfg.HasRoute(originCity, destinationCity) {
		h.logger.WarnContext(ctx, "No pricing configured for route, falling back to default rates",
			"origin", originCity, "destination", destinationCity)
	}

	params := cmd.Params()
	params.OriginCity = originCity
	params.DestinationCity = destinationCity

	breakdown, err := h.calculator.Calculate(params, cfg, h.clock.Now())
	if err != nil {
		return CreateOrderResult{}, err
	}

	planned, err := h.router.PlanRoute(services.RouteRequest{
		Sender:          cmd.Pickup(),
		Receiver:        cmd.Dropoff(),
		OriginCity:      originCity,
		DestinationCity: destinationCity,
	}, warehouses)
	if err != nil {
		return CreateOrderResult{}, err
	}

	milestones, err := h.builder.Build(cmd.Pickup(), cmd.Dropoff(), planned,
		originCity, destinationCity, params.DeliveryType == pricing.InCity)
	if err != nil {
		return CreateOrderResult{}, err
	}

	waypoints := make([]kernel.UUID, 0, len(planned.Warehouses()))
	for _, w := range planned.Warehouses() {
		waypoints = append(waypoints, w.ID())
	}

	o, err := order.NewOrder(cmd.OrderID(), order.Endpoints{
		PickupAddress:   cmd.PickupAddress(),
		Pickup:          cmd.Pickup(),
		DropoffAddress:  cmd.DropoffAddress(),
		Dropoff:         cmd.Dropoff(),
		OriginCity:      originCity,
		DestinationCity: destinationCity,
	}, params, breakdown, waypoints, milestones)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	publishEvent(ctx, h.publisher, h.logger, ports.OrderEvent{
		Type:       ports.OrderCreatedEvent,
		OrderID:    o.ID().String(),
		Status:     o.Status().String(),
		TotalCost:  pricing.FormatPrice(breakdown.TotalCost),
		OccurredAt: h.clock.Now(),
	})

	return CreateOrderResult{
		Order:         o,
		CityDefaulted: originDefaulted || destinationDefaulted,
	}, nil
}

// resolveCity picks, in order: the hint, a known city named in the address,
// the city of the warehouse nearest to the coordinates, the default city.
func (h *CreateOrderCommandHandler) resolveCity(
	ctx context.Context,
	role, hint, address string,
	loc kernel.Location,
	knownCities []string,
	warehouses []*warehouse.Warehouse,
) (string, bool) {
	if hint != "" {
		return services.NormalizeCity(hint, knownCities), false
	}
	if city, ok := services.LookupCityInAddress(address, knownCities); ok {
		return city, false
	}
	if city, ok := services.CityForLocation(loc, warehouses); ok {
		return services.NormalizeCity(city, knownCities), false
	}

	h.logger.WarnContext(ctx, "Could not resolve city, using default",
		"role", role, "address", address, "default_city", h.defaultCity)
	return h.defaultCity, true
}
