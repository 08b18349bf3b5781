package http

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail names one rejected request field.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ShipmentRequest is the pricing input shared by orders and quotes.
type ShipmentRequest struct {
	DeliveryType           string  `json:"deliveryType" validate:"required"`
	DistanceInKm           float64 `json:"distanceInKm" validate:"gte=0"`
	EstimatedTimeInMinutes float64 `json:"estimatedTimeInMinutes" validate:"gte=0"`
	CustomerType           string  `json:"customerType"`
	HasSubscription        bool    `json:"hasSubscription"`
	IsPremium              bool    `json:"isPremium"`
	OrderType              string  `json:"orderType"`
	GoodsType              string  `json:"goodsType"`
	PackagingType          string  `json:"packagingType"`
	ActualWeight           float64 `json:"actualWeight" validate:"gt=0"`
	Length                 float64 `json:"length" validate:"gte=0"`
	Width                  float64 `json:"width" validate:"gte=0"`
	Height                 float64 `json:"height" validate:"gte=0"`
	VehicleType            string  `json:"vehicleType"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. Coordinates use the
// "lat,lng" form; the cities are optional hints.
type CreateOrderRequest struct {
	PickupAddress      string `json:"pickupAddress" validate:"required"`
	PickupCoordinates  string `json:"pickupCoordinates" validate:"required"`
	DropoffAddress     string `json:"dropoffAddress" validate:"required"`
	DropoffCoordinates string `json:"dropoffCoordinates" validate:"required"`
	OriginCity         string `json:"originCity"`
	DestinationCity    string `json:"destinationCity"`
	ShipmentRequest
}

// QuoteRequest is the body of POST /api/v1/quotes.
type QuoteRequest struct {
	OriginCity      string `json:"originCity" validate:"required"`
	DestinationCity string `json:"destinationCity" validate:"required"`
	ShipmentRequest
}

type Fee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Breakdown struct {
	BaseShippingCost           float64 `json:"baseShippingCost"`
	EffectiveWeight            float64 `json:"effectiveWeight"`
	CustomerTypeMultiplier     float64 `json:"customerTypeMultiplier"`
	SubscriptionTypeMultiplier float64 `json:"subscriptionTypeMultiplier"`
	OrderTypeMultiplier        float64 `json:"orderTypeMultiplier"`
	GoodsTypeMultiplier        float64 `json:"goodsTypeMultiplier"`
	PremiumTypeMultiplier      float64 `json:"premiumTypeMultiplier"`
	VehicleTypeMultiplier      float64 `json:"vehicleTypeMultiplier"`
	MultipliedShippingCost     float64 `json:"multipliedShippingCost"`
	PackagingCost              float64 `json:"packagingCost"`
	AdditionalFees             []Fee   `json:"additionalFees"`
	TotalAdditionalFees        float64 `json:"totalAdditionalFees"`
	TotalCost                  float64 `json:"totalCost"`
}

type Milestone struct {
	Description    string `json:"description"`
	Coordinates    string `json:"coordinates,omitempty"`
	IsCompleted    bool   `json:"isCompleted"`
	ExecutionOrder int    `json:"executionOrder"`
	IsLast         bool   `json:"isLast"`
}

// Order is returned by order creation and milestone completion.
type Order struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"`
	PickupAddress   string      `json:"pickupAddress"`
	DropoffAddress  string      `json:"dropoffAddress"`
	OriginCity      string      `json:"originCity"`
	DestinationCity string      `json:"destinationCity"`
	DeliveryType    string      `json:"deliveryType"`
	CityDefaulted   bool        `json:"cityDefaulted,omitempty"`
	TotalCost       string      `json:"totalCost"`
	Breakdown       *Breakdown  `json:"breakdown,omitempty"`
	Waypoints       []string    `json:"waypoints"`
	Milestones      []Milestone `json:"milestones"`
	CreatedAt       *time.Time  `json:"createdAt,omitempty"`
}

type Quote struct {
	OriginCity      string    `json:"originCity"`
	DestinationCity string    `json:"destinationCity"`
	RouteAvailable  bool      `json:"routeAvailable"`
	TotalCost       string    `json:"totalCost"`
	Breakdown       Breakdown `json:"breakdown"`
}
