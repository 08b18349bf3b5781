package pricing_test

import (
	"math"
	"testing"

	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTables() pricing.Tables {
	return pricing.Tables{
		Cities: []string{"Addis Ababa", "Adama", "Hawassa"},
		PricingMatrix: map[string]map[string]float64{
			"Addis Ababa": {"Adama": 15, "Hawassa": 0},
		},
		PackagingFees:               map[string]float64{"BOX": 25},
		CustomerTypeMultipliers:     map[string]float64{"CORPORATE": 0.9, "BROKEN": 0},
		OrderTypeMultipliers:        map[string]float64{"EXPRESS": 1.5},
		GoodsTypeMultipliers:        map[string]float64{"FRAGILE": 1.2},
		SubscriptionTypeMultipliers: map[string]float64{"REGISTERED": 0.95, "UNREGISTERED": 1.05},
		PremiumTypeMultipliers:      map[string]float64{"PREMIUM_CORPORATE": 1.3},
		InCityPricing: map[string]pricing.InCityRate{
			"Addis Ababa": {BaseFare: 50, DistanceChargePerKm: 10, TimeChargePerMinute: 2},
		},
		VehicleTypeMultipliers: map[string]map[string]float64{
			"Addis Ababa": {"Bike": 0.8, "Truck": 2},
		},
		AdditionalFees: map[string][]pricing.Fee{
			"Addis Ababa": {{Name: "Fuel", Amount: 5}, {Name: "Insurance", Amount: 7.5}},
		},
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("accepts well formed tables", func(t *testing.T) {
		cfg, err := pricing.NewConfig(sampleTables())

		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, []string{"Addis Ababa", "Adama", "Hawassa"}, cfg.Cities())
	})

	t.Run("rejects negative and non-finite amounts", func(t *testing.T) {
		tables := sampleTables()
		tables.PackagingFees["BAG"] = -1
		tables.MinimumCharge = math.Inf(1)

		cfg, err := pricing.NewConfig(tables)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "packaging fee BAG")
		assert.Contains(t, err.Error(), "minimum charge")
	})

	t.Run("snapshot is isolated from later edits", func(t *testing.T) {
		tables := sampleTables()
		cfg, err := pricing.NewConfig(tables)
		require.NoError(t, err)

		tables.PricingMatrix["Addis Ababa"]["Adama"] = 99
		tables.AdditionalFees["Addis Ababa"][0].Amount = 1000
		tables.Cities[0] = "Changed"

		rate, ok := cfg.UnitRate("Addis Ababa", "Adama")
		assert.True(t, ok)
		assert.InDelta(t, 15.0, rate, 1e-9)
		assert.InDelta(t, 5.0, cfg.AdditionalFees("Addis Ababa")[0].Amount, 1e-9)
		assert.Equal(t, "Addis Ababa", cfg.Cities()[0])
	})

	t.Run("fees returned are copies", func(t *testing.T) {
		cfg, _ := pricing.NewConfig(sampleTables())

		fees := cfg.AdditionalFees("Addis Ababa")
		fees[0].Amount = 1000

		assert.InDelta(t, 5.0, cfg.AdditionalFees("Addis Ababa")[0].Amount, 1e-9)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cfg *pricing.Config
		require.ErrorIs(t, cfg.Validate(), pricing.ErrConfigIsNotConstructed)
		require.ErrorIs(t, (&pricing.Config{}).Validate(), pricing.ErrConfigIsNotConstructed)
	})
}

func TestConfig_MultipliersDefaultToOne(t *testing.T) {
	cfg, err := pricing.NewConfig(sampleTables())
	require.NoError(t, err)
	empty, err := pricing.NewConfig(pricing.Tables{})
	require.NoError(t, err)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"configured customer type", cfg.CustomerTypeMultiplier("CORPORATE"), 0.9},
		{"missing customer type", cfg.CustomerTypeMultiplier("INDIVIDUAL"), 1},
		{"zero configured customer type", cfg.CustomerTypeMultiplier("BROKEN"), 1},
		{"configured order type", cfg.OrderTypeMultiplier("EXPRESS"), 1.5},
		{"missing order type", cfg.OrderTypeMultiplier("STANDARD"), 1},
		{"configured goods type", cfg.GoodsTypeMultiplier("FRAGILE"), 1.2},
		{"missing goods type", cfg.GoodsTypeMultiplier("DOCUMENT"), 1},
		{"registered subscription", cfg.SubscriptionTypeMultiplier(true), 0.95},
		{"unregistered subscription", cfg.SubscriptionTypeMultiplier(false), 1.05},
		{"premium corporate", cfg.PremiumMultiplier(true, "CORPORATE"), 1.3},
		{"premium flag off", cfg.PremiumMultiplier(false, "CORPORATE"), 1},
		{"premium tier missing", cfg.PremiumMultiplier(true, "INDIVIDUAL"), 1},
		{"vehicle normalized", cfg.VehicleTypeMultiplier("Addis Ababa", "bIKE"), 0.8},
		{"vehicle missing city", cfg.VehicleTypeMultiplier("Adama", "Bike"), 1},
		{"vehicle empty", cfg.VehicleTypeMultiplier("Addis Ababa", ""), 1},
		{"empty config customer", empty.CustomerTypeMultiplier("CORPORATE"), 1},
		{"empty config subscription", empty.SubscriptionTypeMultiplier(true), 1},
		{"empty config vehicle", empty.VehicleTypeMultiplier("Addis Ababa", "Bike"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfig_FeesAndRates(t *testing.T) {
	cfg, err := pricing.NewConfig(sampleTables())
	require.NoError(t, err)

	t.Run("packaging fee defaults to zero", func(t *testing.T) {
		assert.Equal(t, 25.0, cfg.PackagingFee("BOX"))
		assert.Zero(t, cfg.PackagingFee("CRATE"))
	})

	t.Run("additional fees default to empty", func(t *testing.T) {
		assert.Len(t, cfg.AdditionalFees("Addis Ababa"), 2)
		fees := cfg.AdditionalFees("Adama")
		assert.NotNil(t, fees)
		assert.Empty(t, fees)
	})

	t.Run("zero matrix rate counts as missing", func(t *testing.T) {
		_, ok := cfg.UnitRate("Addis Ababa", "Hawassa")
		assert.False(t, ok)
		_, ok = cfg.UnitRate("Adama", "Addis Ababa")
		assert.False(t, ok)
	})

	t.Run("default rate per km", func(t *testing.T) {
		assert.Equal(t, 15.0, cfg.DefaultRatePerKm(15))

		tables := sampleTables()
		tables.DefaultRatePerKm = 12
		configured, _ := pricing.NewConfig(tables)
		assert.Equal(t, 12.0, configured.DefaultRatePerKm(15))
	})

	t.Run("in-city rate prefers base rate per km", func(t *testing.T) {
		rate, ok := cfg.InCityRate("Addis Ababa")
		require.True(t, ok)
		assert.Equal(t, 10.0, rate.RatePerKm())

		rate.BaseRatePerKm = 12
		assert.Equal(t, 12.0, rate.RatePerKm())

		_, ok = cfg.InCityRate("Adama")
		assert.False(t, ok)
	})
}

func TestConfig_HasRoute(t *testing.T) {
	cfg, err := pricing.NewConfig(sampleTables())
	require.NoError(t, err)

	tests := []struct {
		name        string
		origin      string
		destination string
		want        bool
	}{
		{"configured matrix entry", "Addis Ababa", "Adama", true},
		{"matrix match is case-insensitive", "addis ababa", "ADAMA", true},
		{"zero rate entry still exists", "Addis Ababa", "Hawassa", true},
		{"reverse direction missing", "Adama", "Addis Ababa", false},
		{"in-city known city", "Hawassa", "hawassa", true},
		{"in-city unknown city", "Gondar", "Gondar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.HasRoute(tt.origin, tt.destination))
		})
	}
}

func TestNormalizeVehicleType(t *testing.T) {
	assert.Equal(t, "Bike", pricing.NormalizeVehicleType("BIKE"))
	assert.Equal(t, "Bike", pricing.NormalizeVehicleType(" bike "))
	assert.Equal(t, "Minivan", pricing.NormalizeVehicleType("miniVan"))
	assert.Empty(t, pricing.NormalizeVehicleType("  "))
}
