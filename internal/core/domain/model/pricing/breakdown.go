package pricing

import (
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

// AppliedFee is an additional fee charged on an order.
type AppliedFee struct {
	Name   string
	Amount float64
}

// Breakdown is the itemised result of a price calculation. It is a value:
// copies never share the fee slice with the original.
type Breakdown struct {
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
	AdditionalFees             []AppliedFee
	TotalAdditionalFees        float64
	TotalCost                  float64
}

// NewBreakdown derives the multiplied cost and totals from the base cost,
// multipliers, packaging cost and fees.
func NewBreakdown(
	baseShippingCost, effectiveWeight float64,
	multipliers Multipliers,
	packagingCost float64,
	fees []AppliedFee,
) Breakdown {
	applied := slices.Clone(fees)
	if applied == nil {
		applied = []AppliedFee{}
	}

	var totalFees float64
	for _, fee := range applied {
		totalFees += fee.Amount
	}

	multiplied := baseShippingCost * multipliers.Product()

	return Breakdown{
		BaseShippingCost:           baseShippingCost,
		EffectiveWeight:            effectiveWeight,
		CustomerTypeMultiplier:     multipliers.CustomerType,
		SubscriptionTypeMultiplier: multipliers.SubscriptionType,
		OrderTypeMultiplier:        multipliers.OrderType,
		GoodsTypeMultiplier:        multipliers.GoodsType,
		PremiumTypeMultiplier:      multipliers.PremiumType,
		VehicleTypeMultiplier:      multipliers.VehicleType,
		MultipliedShippingCost:     multiplied,
		PackagingCost:              packagingCost,
		AdditionalFees:             applied,
		TotalAdditionalFees:        totalFees,
		TotalCost:                  multiplied + packagingCost + totalFees,
	}
}

// Multipliers groups the six coefficients applied to the base shipping cost.
type Multipliers struct {
	CustomerType     float64
	SubscriptionType float64
	OrderType        float64
	GoodsType        float64
	PremiumType      float64
	VehicleType      float64
}

// Product multiplies the six coefficients in a fixed order.
func (m Multipliers) Product() float64 {
	return m.CustomerType * m.SubscriptionType * m.OrderType * m.GoodsType * m.PremiumType * m.VehicleType
}

// Multipliers returns the coefficients recorded in the breakdown.
func (b Breakdown) Multipliers() Multipliers {
	return Multipliers{
		CustomerType:     b.CustomerTypeMultiplier,
		SubscriptionType: b.SubscriptionTypeMultiplier,
		OrderType:        b.OrderTypeMultiplier,
		GoodsType:        b.GoodsTypeMultiplier,
		PremiumType:      b.PremiumTypeMultiplier,
		VehicleType:      b.VehicleTypeMultiplier,
	}
}

// Fees returns a copy of the applied additional fees.
func (b Breakdown) Fees() []AppliedFee {
	return slices.Clone(b.AdditionalFees)
}

// Check verifies the total identity of a breakdown restored from storage.
func (b Breakdown) Check() error {
	var totalFees float64
	for _, fee := range b.AdditionalFees {
		totalFees += fee.Amount
	}

	want := b.MultipliedShippingCost + b.PackagingCost + totalFees
	if !closeTo(want, b.TotalCost) || !closeTo(totalFees, b.TotalAdditionalFees) {
		return errs.NewValueIsInvalidErrorWithCause("price breakdown",
			fmt.Errorf("total %v does not match components %v", b.TotalCost, want))
	}
	return nil
}

func closeTo(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-6
}
