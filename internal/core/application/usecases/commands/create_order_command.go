package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ShipmentDetails is the pricing input of a new order as submitted by a client.
// OriginCity and DestinationCity are optional hints; when blank the city is
// resolved from the address and then from the coordinates.
type ShipmentDetails struct {
	DeliveryType           string
	OriginCity             string
	DestinationCity        string
	DistanceInKm           float64
	EstimatedTimeInMinutes float64
	CustomerType           string
	HasSubscription        bool
	IsPremium              bool
	OrderType              string
	GoodsType              string
	PackagingType          string
	ActualWeight           float64
	Length                 float64
	Width                  float64
	Height                 float64
	VehicleType            string
}

// CreateOrderCommand represents a request to price, route and register a shipment.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(),
//	    "Piassa, Addis Ababa", "9.0350,38.7520",
//	    "Bole, Addis Ababa", "8.9806,38.7578",
//	    ShipmentDetails{DeliveryType: "IN_CITY", ActualWeight: 4, DistanceInKm: 12})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	pickupAddress       string
	pickup              kernel.Location
	dropoffAddress      string
	dropoff             kernel.Location
	originCityHint      string
	destinationCityHint string
	params              pricing.Params

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the submitted shipment. Coordinates use the
// "lat,lng" form. The dimensional weight is derived from the package size.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	pickupAddress, pickupCoordinates string,
	dropoffAddress, dropoffCoordinates string,
	details ShipmentDetails,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		originCityHint:      strings.TrimSpace(details.OriginCity),
		destinationCityHint: strings.TrimSpace(details.DestinationCity),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPickup(pickupAddress, pickupCoordinates),
		cmd.setDropoff(dropoffAddress, dropoffCoordinates),
		cmd.setParams(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PickupAddress returns the collection address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// Pickup returns the collection coordinates.
func (c CreateOrderCommand) Pickup() kernel.Location {
	return c.pickup
}

// DropoffAddress returns the delivery address.
func (c CreateOrderCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// Dropoff returns the delivery coordinates.
func (c CreateOrderCommand) Dropoff() kernel.Location {
	return c.dropoff
}

// OriginCityHint returns the client supplied origin city, possibly blank.
func (c CreateOrderCommand) OriginCityHint() string {
	return c.originCityHint
}

// DestinationCityHint returns the client supplied destination city, possibly blank.
func (c CreateOrderCommand) DestinationCityHint() string {
	return c.destinationCityHint
}

// Params returns the pricing input without resolved cities.
func (c CreateOrderCommand) Params() pricing.Params {
	return c.params
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPickup(address, coordinates string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}

	loc, err := kernel.ParseLocation(coordinates)
	if err != nil {
		return fmt.Errorf("pickup coordinates: %w", err)
	}

	c.pickupAddress = address
	c.pickup = loc
	return nil
}

func (c *CreateOrderCommand) setDropoff(address, coordinates string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("dropoff address")
	}

	loc, err := kernel.ParseLocation(coordinates)
	if err != nil {
		return fmt.Errorf("dropoff coordinates: %w", err)
	}

	c.dropoffAddress = address
	c.dropoff = loc
	return nil
}

func (c *CreateOrderCommand) setParams(d ShipmentDetails) error {
	deliveryType, err := pricing.ParseDeliveryType(d.DeliveryType)
	if err != nil {
		return err
	}

	params := pricing.Params{
		DeliveryType:           deliveryType,
		DistanceInKm:           d.DistanceInKm,
		EstimatedTimeInMinutes: d.EstimatedTimeInMinutes,
		CustomerType:           strings.TrimSpace(d.CustomerType),
		HasSubscription:        d.HasSubscription,
		IsPremium:              d.IsPremium,
		OrderType:              strings.TrimSpace(d.OrderType),
		GoodsType:              strings.TrimSpace(d.GoodsType),
		PackagingType:          strings.TrimSpace(d.PackagingType),
		ActualWeight:           d.ActualWeight,
		DimensionalWeight:      pricing.DimensionalWeight(d.Length, d.Width, d.Height),
		VehicleType:            strings.TrimSpace(d.VehicleType),
	}
	if err = params.Validate(); err != nil {
		return err
	}

	c.params = params
	return nil
}
