package services

import (
	"time"

	"logistics/internal/core/domain/model/pricing"
)

const (
	// DefaultInCityRatePerKm prices in-city trips of cities without a tariff.
	DefaultInCityRatePerKm = 10.0
	// DefaultBetweenCitiesRatePerKm prices inter-city trips without a matrix rate.
	DefaultBetweenCitiesRatePerKm = 15.0

	// PeakHourStart and PeakHourEnd bound the inclusive local hours in which
	// the in-city peak multiplier applies.
	PeakHourStart = 17
	PeakHourEnd   = 19
)

// PriceCalculator computes shipping prices from a pricing snapshot.
//
// Business rules:
//   - every multiplier missing from the snapshot is 1
//   - missing rates fall back to distance × default rate per km, never to an error
//   - the peak multiplier depends only on the supplied time, never on the wall clock
//   - totalCost = multipliedShippingCost + packagingCost + totalAdditionalFees
//
// Example usage:
//
//	calc := services.NewPriceCalculator()
//	b, err := calc.Calculate(params, cfg, clock.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pricing.FormatPrice(b.TotalCost))
type PriceCalculator struct{}

// NewPriceCalculator creates a PriceCalculator.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate prices one order.
//
// Parameters:
//   - params: the order input; invalid numbers are rejected
//   - cfg: the pricing snapshot
//   - at: the moment the price is quoted, used for peak-hour detection
//
// Returns:
//   - pricing.Breakdown: the itemised price
//   - error: validation errors of params or cfg
func (PriceCalculator) Calculate(params pricing.Params, cfg *pricing.Config, at time.Time) (pricing.Breakdown, error) {
	if err := cfg.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}
	if err := params.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}

	cities := cfg.Cities()
	origin := NormalizeCity(params.OriginCity, cities)
	destination := NormalizeCity(params.DestinationCity, cities)

	multipliers := pricing.Multipliers{
		CustomerType:     cfg.CustomerTypeMultiplier(params.CustomerType),
		SubscriptionType: cfg.SubscriptionTypeMultiplier(params.HasSubscription),
		OrderType:        cfg.OrderTypeMultiplier(params.OrderType),
		GoodsType:        cfg.GoodsTypeMultiplier(params.GoodsType),
		PremiumType:      cfg.PremiumMultiplier(params.IsPremium, params.CustomerType),
		VehicleType:      1,
	}
	effectiveWeight := params.EffectiveWeight()

	var base float64
	switch params.DeliveryType {
	case pricing.InCity:
		var tariff bool
		base, tariff = inCityCost(params, cfg, origin, effectiveWeight, at)
		if tariff {
			multipliers.VehicleType = cfg.VehicleTypeMultiplier(origin, params.VehicleType)
		}
	case pricing.BetweenCities:
		base = betweenCitiesCost(params, cfg, origin, destination, effectiveWeight)
	}

	fees := cfg.AdditionalFees(origin)
	applied := make([]pricing.AppliedFee, 0, len(fees))
	for _, fee := range fees {
		applied = append(applied, pricing.AppliedFee{Name: fee.Name, Amount: fee.Amount})
	}

	return pricing.NewBreakdown(base, effectiveWeight, multipliers, cfg.PackagingFee(params.PackagingType), applied), nil
}

// inCityCost returns the in-city base cost and whether a city tariff was used.
func inCityCost(params pricing.Params, cfg *pricing.Config, city string, effectiveWeight float64, at time.Time) (float64, bool) {
	rate, ok := cfg.InCityRate(city)
	if !ok {
		return params.DistanceInKm * cfg.DefaultRatePerKm(DefaultInCityRatePerKm), false
	}

	cost := rate.BaseFare + params.DistanceInKm*rate.RatePerKm()
	if params.EstimatedTimeInMinutes > 0 && rate.TimeChargePerMinute > 0 {
		cost += params.EstimatedTimeInMinutes * rate.TimeChargePerMinute
	}
	if isPeakHour(at) && rate.PeakHourMultiplier > 0 {
		cost *= rate.PeakHourMultiplier
	}

	cost *= effectiveWeight

	if rate.MinimumFare > 0 && cost < rate.MinimumFare {
		cost = rate.MinimumFare
	}

	return cost, true
}

func betweenCitiesCost(params pricing.Params, cfg *pricing.Config, origin, destination string, effectiveWeight float64) float64 {
	unitRate, ok := cfg.UnitRate(origin, destination)
	if !ok {
		return params.DistanceInKm * cfg.DefaultRatePerKm(DefaultBetweenCitiesRatePerKm)
	}

	cost := unitRate * effectiveWeight
	if minimum := cfg.MinimumCharge(); minimum > 0 && cost < minimum {
		cost = minimum
	}
	return cost
}

func isPeakHour(at time.Time) bool {
	h := at.Hour()
	return h >= PeakHourStart && h <= PeakHourEnd
}
