// Package http exposes the order and quote use cases over a JSON API built
// on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the server.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	CompleteMilestoneHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteMilestoneCommand) (*order.Order, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	QuotePriceHandler interface {
		Handle(ctx context.Context, query queries.QuotePriceQuery) (queries.QuotePriceQueryResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       CreateOrderHandler
	completeMilestoneHandler CompleteMilestoneHandler

	// Query handlers
	getOrderHandler   GetOrderHandler
	quotePriceHandler QuotePriceHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	completeMilestoneHandler CompleteMilestoneHandler,
	getOrderHandler GetOrderHandler,
	quotePriceHandler QuotePriceHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		completeMilestoneHandler: completeMilestoneHandler,
		getOrderHandler:          getOrderHandler,
		quotePriceHandler:        quotePriceHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// Register installs the validator and every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/milestones/:executionOrder/complete", s.CompleteMilestone)
	api.POST("/quotes", s.QuotePrice)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - prices, routes and stores a new order.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(),
		req.PickupAddress, req.PickupCoordinates,
		req.DropoffAddress, req.DropoffCoordinates,
		commands.ShipmentDetails{
			DeliveryType:           req.DeliveryType,
			OriginCity:             req.OriginCity,
			DestinationCity:        req.DestinationCity,
			DistanceInKm:           req.DistanceInKm,
			EstimatedTimeInMinutes: req.EstimatedTimeInMinutes,
			CustomerType:           req.CustomerType,
			HasSubscription:        req.HasSubscription,
			IsPremium:              req.IsPremium,
			OrderType:              req.OrderType,
			GoodsType:              req.GoodsType,
			PackagingType:          req.PackagingType,
			ActualWeight:           req.ActualWeight,
			Length:                 req.Length,
			Width:                  req.Width,
			Height:                 req.Height,
			VehicleType:            req.VehicleType,
		})
	if err != nil {
		return writeError(c, s.logger, err)
	}

	result, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	resp := orderFromDomain(result.Order)
	resp.CityDefaulted = result.CityDefaulted
	return c.JSON(http.StatusCreated, resp)
}

// GetOrder handles GET /api/v1/orders/:id - returns the tracking view of an order.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	found, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	milestones := make([]Milestone, 0, len(found.Milestones))
	for _, m := range found.Milestones {
		milestones = append(milestones, Milestone{
			Description:    m.Description,
			Coordinates:    m.Coordinates,
			IsCompleted:    m.IsCompleted,
			ExecutionOrder: m.ExecutionOrder,
			IsLast:         m.IsLast,
		})
	}
	createdAt := found.CreatedAt

	return c.JSON(http.StatusOK, Order{
		ID:              found.ID.String(),
		Status:          found.Status,
		PickupAddress:   found.PickupAddress,
		DropoffAddress:  found.DropoffAddress,
		OriginCity:      found.OriginCity,
		DestinationCity: found.DestinationCity,
		DeliveryType:    found.DeliveryType,
		TotalCost:       found.TotalCost,
		Waypoints:       nonNil(found.Waypoints),
		Milestones:      milestones,
		CreatedAt:       &createdAt,
	})
}

// CompleteMilestone handles POST /api/v1/orders/:id/milestones/:executionOrder/complete.
func (s *Server) CompleteMilestone(c echo.Context) error {
	id, err := parseOrderID(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	executionOrder, err := strconv.Atoi(c.Param("executionOrder"))
	if err != nil {
		return writeError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("execution order", err))
	}

	cmd, err := commands.NewCompleteMilestoneCommand(id, executionOrder)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	updated, err := s.completeMilestoneHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, orderFromDomain(updated))
}

// QuotePrice handles POST /api/v1/quotes - prices a shipment without storing it.
func (s *Server) QuotePrice(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, s.logger, err)
	}

	deliveryType, err := pricing.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewQuotePriceQuery(pricing.Params{
		DeliveryType:           deliveryType,
		OriginCity:             req.OriginCity,
		DestinationCity:        req.DestinationCity,
		DistanceInKm:           req.DistanceInKm,
		EstimatedTimeInMinutes: req.EstimatedTimeInMinutes,
		CustomerType:           req.CustomerType,
		HasSubscription:        req.HasSubscription,
		IsPremium:              req.IsPremium,
		OrderType:              req.OrderType,
		GoodsType:              req.GoodsType,
		PackagingType:          req.PackagingType,
		ActualWeight:           req.ActualWeight,
		DimensionalWeight:      pricing.DimensionalWeight(req.Length, req.Width, req.Height),
		VehicleType:            req.VehicleType,
	})
	if err != nil {
		return writeError(c, s.logger, err)
	}

	quote, err := s.quotePriceHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, Quote{
		OriginCity:      quote.OriginCity,
		DestinationCity: quote.DestinationCity,
		RouteAvailable:  quote.RouteAvailable,
		TotalCost:       quote.TotalCost,
		Breakdown:       breakdownFromDomain(quote.Breakdown),
	})
}

func parseOrderID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return id, nil
}

func orderFromDomain(o *order.Order) Order {
	endpoints := o.Endpoints()
	breakdown := breakdownFromDomain(o.Breakdown())

	waypoints := make([]string, 0, len(o.Waypoints()))
	for _, id := range o.Waypoints() {
		waypoints = append(waypoints, id.String())
	}

	milestones := make([]Milestone, 0, len(o.Milestones()))
	for _, m := range o.Milestones() {
		view := Milestone{
			Description:    m.Description(),
			IsCompleted:    m.IsCompleted(),
			ExecutionOrder: m.ExecutionOrder(),
			IsLast:         m.IsLast(),
		}
		if loc := m.Coordinates(); loc != nil {
			view.Coordinates = loc.String()
		}
		milestones = append(milestones, view)
	}

	return Order{
		ID:              o.ID().String(),
		Status:          o.Status().String(),
		PickupAddress:   endpoints.PickupAddress,
		DropoffAddress:  endpoints.DropoffAddress,
		OriginCity:      endpoints.OriginCity,
		DestinationCity: endpoints.DestinationCity,
		DeliveryType:    o.Params().DeliveryType.String(),
		TotalCost:       pricing.FormatPrice(breakdown.TotalCost),
		Breakdown:       &breakdown,
		Waypoints:       waypoints,
		Milestones:      milestones,
	}
}

func breakdownFromDomain(b pricing.Breakdown) Breakdown {
	fees := make([]Fee, 0, len(b.AdditionalFees))
	for _, fee := range b.AdditionalFees {
		fees = append(fees, Fee{Name: fee.Name, Amount: fee.Amount})
	}

	return Breakdown{
		BaseShippingCost:           b.BaseShippingCost,
		EffectiveWeight:            b.EffectiveWeight,
		CustomerTypeMultiplier:     b.CustomerTypeMultiplier,
		SubscriptionTypeMultiplier: b.SubscriptionTypeMultiplier,
		OrderTypeMultiplier:        b.OrderTypeMultiplier,
		GoodsTypeMultiplier:        b.GoodsTypeMultiplier,
		PremiumTypeMultiplier:      b.PremiumTypeMultiplier,
		VehicleTypeMultiplier:      b.VehicleTypeMultiplier,
		MultipliedShippingCost:     b.MultipliedShippingCost,
		PackagingCost:              b.PackagingCost,
		AdditionalFees:             fees,
		TotalAdditionalFees:        b.TotalAdditionalFees,
		TotalCost:                  b.TotalCost,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
