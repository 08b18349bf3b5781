// Package services holds the stateless domain services of the logistics core:
//
//   - city normalization (NormalizeCity, ExtractCityFromAddress, CityForLocation)
//   - PriceCalculator, the multi-factor shipping price engine
//   - WarehouseRouter, sender/receiver warehouse selection with optional on-path stops
//   - MilestoneBuilder, the milestone sequence of a new order
//
// Services own no I/O and no mutable state. Given the same pricing snapshot,
// warehouse list and input they return identical results and may be shared
// between goroutines.
package services
