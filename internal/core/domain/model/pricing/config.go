package pricing

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// SubscriptionRegistered is the subscription multiplier key for subscribed customers.
	SubscriptionRegistered = "REGISTERED"
	// SubscriptionUnregistered is the subscription multiplier key for everyone else.
	SubscriptionUnregistered = "UNREGISTERED"
	// PremiumKeyPrefix prefixes the customer type to form a premium multiplier key.
	PremiumKeyPrefix = "PREMIUM_"
)

// ErrConfigIsNotConstructed is returned when a zero-value Config is used.
var ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig constructor")

// InCityRate holds the distance/time tariff of a single city.
// Zero optional fields mean "not configured".
type InCityRate struct {
	BaseFare            float64
	DistanceChargePerKm float64
	TimeChargePerMinute float64
	// BaseRatePerKm overrides DistanceChargePerKm when positive.
	BaseRatePerKm      float64
	MinimumFare        float64
	PeakHourMultiplier float64
}

// RatePerKm returns the per-kilometre charge, preferring BaseRatePerKm.
func (r InCityRate) RatePerKm() float64 {
	if r.BaseRatePerKm > 0 {
		return r.BaseRatePerKm
	}
	return r.DistanceChargePerKm
}

// Fee is a flat surcharge configured per city.
type Fee struct {
	Name        string
	Amount      float64
	Description string
}

// Tables is the plain, mutable form of the rate tables as they are read from storage.
// It is turned into an immutable snapshot by NewConfig.
type Tables struct {
	Cities                      []string
	PricingMatrix               map[string]map[string]float64
	PackagingFees               map[string]float64
	CustomerTypeMultipliers     map[string]float64
	OrderTypeMultipliers        map[string]float64
	GoodsTypeMultipliers        map[string]float64
	SubscriptionTypeMultipliers map[string]float64
	PremiumTypeMultipliers      map[string]float64
	InCityPricing               map[string]InCityRate
	VehicleTypeMultipliers      map[string]map[string]float64
	AdditionalFees              map[string][]Fee
	DefaultRatePerKm            float64
	MinimumCharge               float64
}

// Config is a read-only pricing snapshot. All lookups encapsulate the default
// policy: multipliers default to 1, packaging fees to 0 and additional fees to
// an empty list. A Config is safe for concurrent use.
type Config struct {
	tables Tables
	guard  guard.ConstructorGuard
}

// NewConfig deep-copies the tables into an immutable snapshot.
// Negative or non-finite amounts are rejected.
func NewConfig(t Tables) (*Config, error) {
	if err := validateTables(t); err != nil {
		return nil, err
	}

	return &Config{
		tables: cloneTables(t),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Config was built by NewConfig.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigIsNotConstructed
	}
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// Cities returns the canonical city names.
func (c *Config) Cities() []string {
	return slices.Clone(c.tables.Cities)
}

// UnitRate returns the per-kg inter-city rate. A zero rate counts as missing.
func (c *Config) UnitRate(origin, destination string) (float64, bool) {
	rate := c.tables.PricingMatrix[origin][destination]
	return rate, rate > 0
}

// HasRoute reports whether the configuration can price a trip between the two
// cities: in-city trips need the city to be configured, inter-city trips need a
// matrix entry (destination matched case-insensitively).
func (c *Config) HasRoute(origin, destination string) bool {
	if strings.EqualFold(origin, destination) {
		for _, city := range c.tables.Cities {
			if strings.EqualFold(city, origin) {
				return true
			}
		}
		for city := range c.tables.InCityPricing {
			if strings.EqualFold(city, origin) {
				return true
			}
		}
		return false
	}

	for from, row := range c.tables.PricingMatrix {
		if !strings.EqualFold(from, origin) {
			continue
		}
		for to := range row {
			if strings.EqualFold(to, destination) {
				return true
			}
		}
	}
	return false
}

// PackagingFee returns the flat fee of the packaging type, or 0.
func (c *Config) PackagingFee(packagingType string) float64 {
	return c.tables.PackagingFees[packagingType]
}

// CustomerTypeMultiplier returns the coefficient of the customer type, or 1.
func (c *Config) CustomerTypeMultiplier(customerType string) float64 {
	return multiplierOrOne(c.tables.CustomerTypeMultipliers, customerType)
}

// OrderTypeMultiplier returns the coefficient of the order type, or 1.
func (c *Config) OrderTypeMultiplier(orderType string) float64 {
	return multiplierOrOne(c.tables.OrderTypeMultipliers, orderType)
}

// GoodsTypeMultiplier returns the coefficient of the goods type, or 1.
func (c *Config) GoodsTypeMultiplier(goodsType string) float64 {
	return multiplierOrOne(c.tables.GoodsTypeMultipliers, goodsType)
}

// SubscriptionTypeMultiplier returns the REGISTERED or UNREGISTERED coefficient, or 1.
func (c *Config) SubscriptionTypeMultiplier(hasSubscription bool) float64 {
	key := SubscriptionUnregistered
	if hasSubscription {
		key = SubscriptionRegistered
	}
	return multiplierOrOne(c.tables.SubscriptionTypeMultipliers, key)
}

// PremiumMultiplier returns the PREMIUM_<customerType> coefficient for premium
// orders and 1 otherwise.
func (c *Config) PremiumMultiplier(isPremium bool, customerType string) float64 {
	if !isPremium {
		return 1
	}
	return multiplierOrOne(c.tables.PremiumTypeMultipliers, PremiumKeyPrefix+customerType)
}

// VehicleTypeMultiplier returns the coefficient of the vehicle in the city, or 1.
// The vehicle type is matched with its first letter upper-cased and the rest lower-cased.
func (c *Config) VehicleTypeMultiplier(city, vehicleType string) float64 {
	if vehicleType == "" {
		return 1
	}
	return multiplierOrOne(c.tables.VehicleTypeMultipliers[city], NormalizeVehicleType(vehicleType))
}

// InCityRate returns the tariff of the city, if configured.
func (c *Config) InCityRate(city string) (InCityRate, bool) {
	rate, ok := c.tables.InCityPricing[city]
	return rate, ok
}

// AdditionalFees returns a copy of the fees configured for the city.
func (c *Config) AdditionalFees(city string) []Fee {
	fees := c.tables.AdditionalFees[city]
	if len(fees) == 0 {
		return []Fee{}
	}
	return slices.Clone(fees)
}

// DefaultRatePerKm returns the configured fallback per-km rate, or fallback when unset.
func (c *Config) DefaultRatePerKm(fallback float64) float64 {
	if c.tables.DefaultRatePerKm > 0 {
		return c.tables.DefaultRatePerKm
	}
	return fallback
}

// MinimumCharge returns the inter-city minimum charge; 0 means none.
func (c *Config) MinimumCharge() float64 {
	return c.tables.MinimumCharge
}

// NormalizeVehicleType upper-cases the first letter and lower-cases the rest ("BIKE" -> "Bike").
func NormalizeVehicleType(vehicleType string) string {
	v := strings.TrimSpace(vehicleType)
	if v == "" {
		return ""
	}
	runes := []rune(strings.ToLower(v))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func multiplierOrOne(table map[string]float64, key string) float64 {
	if m, ok := table[key]; ok && m > 0 {
		return m
	}
	return 1
}

func validateTables(t Tables) error {
	var problems []error

	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				name, fmt.Errorf("%v is not a non-negative finite number", v)))
		}
	}

	for from, row := range t.PricingMatrix {
		for to, rate := range row {
			check("pricing matrix "+from+" -> "+to, rate)
		}
	}
	for name, table := range map[string]map[string]float64{
		"packaging fee":            t.PackagingFees,
		"customer type multiplier": t.CustomerTypeMultipliers,
		"order type multiplier":    t.OrderTypeMultipliers,
		"goods type multiplier":    t.GoodsTypeMultipliers,
		"subscription multiplier":  t.SubscriptionTypeMultipliers,
		"premium type multiplier":  t.PremiumTypeMultipliers,
	} {
		for key, v := range table {
			check(name+" "+key, v)
		}
	}
	for city, rate := range t.InCityPricing {
		check("base fare "+city, rate.BaseFare)
		check("distance charge "+city, rate.DistanceChargePerKm)
		check("time charge "+city, rate.TimeChargePerMinute)
		check("base rate per km "+city, rate.BaseRatePerKm)
		check("minimum fare "+city, rate.MinimumFare)
		check("peak hour multiplier "+city, rate.PeakHourMultiplier)
	}
	for city, row := range t.VehicleTypeMultipliers {
		for vehicle, v := range row {
			check("vehicle multiplier "+city+" "+vehicle, v)
		}
	}
	for city, fees := range t.AdditionalFees {
		for _, fee := range fees {
			check("additional fee "+city+" "+fee.Name, fee.Amount)
		}
	}
	check("default rate per km", t.DefaultRatePerKm)
	check("minimum charge", t.MinimumCharge)

	return errors.Join(problems...)
}

func cloneTables(t Tables) Tables {
	out := Tables{
		Cities:                      slices.Clone(t.Cities),
		PricingMatrix:               make(map[string]map[string]float64, len(t.PricingMatrix)),
		PackagingFees:               maps.Clone(t.PackagingFees),
		CustomerTypeMultipliers:     maps.Clone(t.CustomerTypeMultipliers),
		OrderTypeMultipliers:        maps.Clone(t.OrderTypeMultipliers),
		GoodsTypeMultipliers:        maps.Clone(t.GoodsTypeMultipliers),
		SubscriptionTypeMultipliers: maps.Clone(t.SubscriptionTypeMultipliers),
		PremiumTypeMultipliers:      maps.Clone(t.PremiumTypeMultipliers),
		InCityPricing:               maps.Clone(t.InCityPricing),
		VehicleTypeMultipliers:      make(map[string]map[string]float64, len(t.VehicleTypeMultipliers)),
		AdditionalFees:              make(map[string][]Fee, len(t.AdditionalFees)),
		DefaultRatePerKm:            t.DefaultRatePerKm,
		MinimumCharge:               t.MinimumCharge,
	}

	for from, row := range t.PricingMatrix {
		out.PricingMatrix[from] = maps.Clone(row)
	}
	for city, row := range t.VehicleTypeMultipliers {
		out.VehicleTypeMultipliers[city] = maps.Clone(row)
	}
	for city, fees := range t.AdditionalFees {
		out.AdditionalFees[city] = slices.Clone(fees)
	}

	return out
}
