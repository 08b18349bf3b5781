package pricing

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
)

// DimensionalDivisor converts cubic centimetres into volumetric kilograms.
const DimensionalDivisor = 5000.0

// Params is the per-order input of the price calculation.
type Params struct {
	DeliveryType    DeliveryType
	OriginCity      string
	DestinationCity string
	DistanceInKm    float64
	// EstimatedTimeInMinutes is 0 when unknown.
	EstimatedTimeInMinutes float64
	CustomerType           string
	HasSubscription        bool
	IsPremium              bool
	OrderType              string
	GoodsType              string
	PackagingType          string
	ActualWeight           float64
	DimensionalWeight      float64
	// VehicleType is only used for InCity deliveries.
	VehicleType string
}

// DimensionalWeight returns length×width×height/5000 when all three dimensions
// are positive, and 0 otherwise.
func DimensionalWeight(length, width, height float64) float64 {
	if length <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	return length * width * height / DimensionalDivisor
}

// EffectiveWeight is the billable weight: the greater of actual and dimensional weight.
func (p Params) EffectiveWeight() float64 {
	return math.Max(p.ActualWeight, p.DimensionalWeight)
}

// Validate checks the numeric input for values that would silently corrupt a price.
func (p Params) Validate() error {
	return errors.Join(
		p.DeliveryType.Validate(),
		positive("actual weight", p.ActualWeight),
		nonNegative("dimensional weight", p.DimensionalWeight),
		nonNegative("distance", p.DistanceInKm),
		nonNegative("estimated time", p.EstimatedTimeInMinutes),
	)
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", v))
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is negative or not finite", v))
	}
	return nil
}
