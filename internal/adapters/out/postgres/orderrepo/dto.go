// Package orderrepo persists order aggregates: one row per order in "orders"
// carrying the pricing input and the price breakdown, and one row per
// milestone in "order_milestones".
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// OrderDTO is the database shape of an order.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickupAddress   string
	PickupLocation  string `gorm:"type:varchar(64)"`
	DropoffAddress  string
	DropoffLocation string `gorm:"type:varchar(64)"`
	OriginCity      string `gorm:"index"`
	DestinationCity string `gorm:"index"`

	Params    ParamsDTO    `gorm:"embedded"`
	Breakdown BreakdownDTO `gorm:"embedded;embeddedPrefix:price_"`

	Waypoints  pq.StringArray `gorm:"type:text[]"`
	Status     int            `gorm:"index"`
	Milestones []MilestoneDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// ParamsDTO is the embedded pricing input.
type ParamsDTO struct {
	DeliveryType           string `gorm:"type:varchar(32)"`
	DistanceInKm           float64
	EstimatedTimeInMinutes float64
	CustomerType           string
	HasSubscription        bool
	IsPremium              bool
	OrderType              string
	GoodsType              string
	PackagingType          string
	ActualWeight           float64
	DimensionalWeight      float64
	VehicleType            string
}

// BreakdownDTO is the embedded price breakdown. Applied fees are kept as a
// JSON array in their original order.
type BreakdownDTO struct {
	BaseShippingCost           float64
	EffectiveWeight            float64
	CustomerTypeMultiplier     float64
	SubscriptionTypeMultiplier float64
	OrderTypeMultiplier        float64
	GoodsTypeMultiplier        float64
	PremiumTypeMultiplier      float64
	VehicleTypeMultiplier      float64
	MultipliedShippingCost     float64
	PackagingCost              float64
	AdditionalFees             datatypes.JSON
	TotalAdditionalFees        float64
	TotalCost                  float64
}

// FeeDTO is one element of BreakdownDTO.AdditionalFees.
type FeeDTO struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// MilestoneDTO is the database shape of a milestone.
type MilestoneDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index"`
	Description    string
	Coordinates    *string    `gorm:"type:varchar(64)"`
	WarehouseID    *uuid.UUID `gorm:"type:uuid"`
	IsCompleted    bool
	ExecutionOrder int
	IsLast         bool
}

// TableName overrides GORM's default naming.
func (MilestoneDTO) TableName() string {
	return "order_milestones"
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	endpoints := aggregate.Endpoints()
	params := aggregate.Params()
	breakdown := aggregate.Breakdown()

	fees := make([]FeeDTO, 0, len(breakdown.AdditionalFees))
	for _, fee := range breakdown.AdditionalFees {
		fees = append(fees, FeeDTO{Name: fee.Name, Amount: fee.Amount})
	}
	rawFees, err := json.Marshal(fees)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode additional fees: %w", err)
	}

	waypoints := make(pq.StringArray, 0, len(aggregate.Waypoints()))
	for _, id := range aggregate.Waypoints() {
		waypoints = append(waypoints, id.String())
	}

	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		PickupAddress:   endpoints.PickupAddress,
		PickupLocation:  endpoints.Pickup.String(),
		DropoffAddress:  endpoints.DropoffAddress,
		DropoffLocation: endpoints.Dropoff.String(),
		OriginCity:      endpoints.OriginCity,
		DestinationCity: endpoints.DestinationCity,
		Params: ParamsDTO{
			DeliveryType:           params.DeliveryType.String(),
			DistanceInKm:           params.DistanceInKm,
			EstimatedTimeInMinutes: params.EstimatedTimeInMinutes,
			CustomerType:           params.CustomerType,
			HasSubscription:        params.HasSubscription,
			IsPremium:              params.IsPremium,
			OrderType:              params.OrderType,
			GoodsType:              params.GoodsType,
			PackagingType:          params.PackagingType,
			ActualWeight:           params.ActualWeight,
			DimensionalWeight:      params.DimensionalWeight,
			VehicleType:            params.VehicleType,
		},
		Breakdown: BreakdownDTO{
			BaseShippingCost:           breakdown.BaseShippingCost,
			EffectiveWeight:            breakdown.EffectiveWeight,
			CustomerTypeMultiplier:     breakdown.CustomerTypeMultiplier,
			SubscriptionTypeMultiplier: breakdown.SubscriptionTypeMultiplier,
			OrderTypeMultiplier:        breakdown.OrderTypeMultiplier,
			GoodsTypeMultiplier:        breakdown.GoodsTypeMultiplier,
			PremiumTypeMultiplier:      breakdown.PremiumTypeMultiplier,
			VehicleTypeMultiplier:      breakdown.VehicleTypeMultiplier,
			MultipliedShippingCost:     breakdown.MultipliedShippingCost,
			PackagingCost:              breakdown.PackagingCost,
			AdditionalFees:             datatypes.JSON(rawFees),
			TotalAdditionalFees:        breakdown.TotalAdditionalFees,
			TotalCost:                  breakdown.TotalCost,
		},
		Waypoints:  waypoints,
		Status:     int(aggregate.Status()),
		Milestones: make([]MilestoneDTO, 0, len(aggregate.Milestones())),
	}

	for _, m := range aggregate.Milestones() {
		dto.Milestones = append(dto.Milestones, milestoneFromDomain(dto.ID, m))
	}

	return dto, nil
}

func milestoneFromDomain(orderID uuid.UUID, m *order.Milestone) MilestoneDTO {
	dto := MilestoneDTO{
		ID:             m.ID().Bytes(),
		OrderID:        orderID,
		Description:    m.Description(),
		IsCompleted:    m.IsCompleted(),
		ExecutionOrder: m.ExecutionOrder(),
		IsLast:         m.IsLast(),
	}
	if loc := m.Coordinates(); loc != nil {
		s := loc.String()
		dto.Coordinates = &s
	}
	if wid := m.WarehouseID(); wid != nil {
		raw := wid.Bytes()
		dto.WarehouseID = &raw
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.ParseLocation(dto.PickupLocation)
	if err != nil {
		return nil, fmt.Errorf("pickup location: %w", err)
	}
	dropoff, err := kernel.ParseLocation(dto.DropoffLocation)
	if err != nil {
		return nil, fmt.Errorf("dropoff location: %w", err)
	}

	deliveryType, err := pricing.ParseDeliveryType(dto.Params.DeliveryType)
	if err != nil {
		return nil, err
	}

	var fees []FeeDTO
	if len(dto.Breakdown.AdditionalFees) > 0 {
		if err = json.Unmarshal(dto.Breakdown.AdditionalFees, &fees); err != nil {
			return nil, fmt.Errorf("decode additional fees: %w", err)
		}
	}
	applied := make([]pricing.AppliedFee, 0, len(fees))
	for _, fee := range fees {
		applied = append(applied, pricing.AppliedFee{Name: fee.Name, Amount: fee.Amount})
	}

	waypoints := make([]kernel.UUID, 0, len(dto.Waypoints))
	for _, raw := range dto.Waypoints {
		wid, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		waypoints = append(waypoints, wid)
	}

	milestones := make([]*order.Milestone, 0, len(dto.Milestones))
	for _, m := range dto.Milestones {
		restored, restoreErr := milestoneToDomain(m)
		if restoreErr != nil {
			return nil, restoreErr
		}
		milestones = append(milestones, restored)
	}

	endpoints := order.Endpoints{
		PickupAddress:   dto.PickupAddress,
		Pickup:          pickup,
		DropoffAddress:  dto.DropoffAddress,
		Dropoff:         dropoff,
		OriginCity:      dto.OriginCity,
		DestinationCity: dto.DestinationCity,
	}
	params := pricing.Params{
		DeliveryType:           deliveryType,
		OriginCity:             dto.OriginCity,
		DestinationCity:        dto.DestinationCity,
		DistanceInKm:           dto.Params.DistanceInKm,
		EstimatedTimeInMinutes: dto.Params.EstimatedTimeInMinutes,
		CustomerType:           dto.Params.CustomerType,
		HasSubscription:        dto.Params.HasSubscription,
		IsPremium:              dto.Params.IsPremium,
		OrderType:              dto.Params.OrderType,
		GoodsType:              dto.Params.GoodsType,
		PackagingType:          dto.Params.PackagingType,
		ActualWeight:           dto.Params.ActualWeight,
		DimensionalWeight:      dto.Params.DimensionalWeight,
		VehicleType:            dto.Params.VehicleType,
	}
	b := dto.Breakdown
	breakdown := pricing.Breakdown{
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
		AdditionalFees:             applied,
		TotalAdditionalFees:        b.TotalAdditionalFees,
		TotalCost:                  b.TotalCost,
	}

	return order.RestoreOrder(id, endpoints, params, breakdown, waypoints, milestones, order.Status(dto.Status))
}

func milestoneToDomain(dto MilestoneDTO) (*order.Milestone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var coordinates *kernel.Location
	if dto.Coordinates != nil {
		loc, parseErr := kernel.ParseLocation(*dto.Coordinates)
		if parseErr != nil {
			return nil, parseErr
		}
		coordinates = &loc
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wid, idErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if idErr != nil {
			return nil, idErr
		}
		warehouseID = &wid
	}

	return order.NewMilestone(id, dto.Description, coordinates, warehouseID, dto.ExecutionOrder, dto.IsLast, dto.IsCompleted)
}
