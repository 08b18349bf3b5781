package pricingrepo

import (
	"context"
	"errors"
	"maps"
	"slices"

	"logistics/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormPricingConfigRepository implements PricingConfigRepository using GORM.
type GormPricingConfigRepository struct {
	db *gorm.DB
}

// NewGormPricingConfigRepository creates a new GORM pricing repository.
func NewGormPricingConfigRepository(db *gorm.DB) *GormPricingConfigRepository {
	return &GormPricingConfigRepository{db: db}
}

// Get reads every rate table and returns an immutable snapshot. Empty tables
// produce a snapshot in which every lookup takes its default.
func (r *GormPricingConfigRepository) Get(ctx context.Context) (*pricing.Config, error) {
	db := r.db.WithContext(ctx)

	var (
		cities      []CityDTO
		matrix      []MatrixRateDTO
		packaging   []PackagingFeeDTO
		multipliers []MultiplierDTO
		inCity      []InCityRateDTO
		vehicles    []VehicleMultiplierDTO
		fees        []AdditionalFeeDTO
		settings    []SettingsDTO
	)

	if err := errors.Join(
		db.Order("name").Find(&cities).Error,
		db.Find(&matrix).Error,
		db.Find(&packaging).Error,
		db.Find(&multipliers).Error,
		db.Find(&inCity).Error,
		db.Find(&vehicles).Error,
		db.Order("city").Order("position").Find(&fees).Error,
		db.Where("id = ?", settingsID).Find(&settings).Error,
	); err != nil {
		return nil, err
	}

	t := pricing.Tables{
		Cities:                      make([]string, 0, len(cities)),
		PricingMatrix:               make(map[string]map[string]float64),
		PackagingFees:               make(map[string]float64, len(packaging)),
		CustomerTypeMultipliers:     make(map[string]float64),
		OrderTypeMultipliers:        make(map[string]float64),
		GoodsTypeMultipliers:        make(map[string]float64),
		SubscriptionTypeMultipliers: make(map[string]float64),
		PremiumTypeMultipliers:      make(map[string]float64),
		InCityPricing:               make(map[string]pricing.InCityRate, len(inCity)),
		VehicleTypeMultipliers:      make(map[string]map[string]float64),
		AdditionalFees:              make(map[string][]pricing.Fee),
	}

	for _, c := range cities {
		t.Cities = append(t.Cities, c.Name)
	}
	for _, m := range matrix {
		if t.PricingMatrix[m.OriginCity] == nil {
			t.PricingMatrix[m.OriginCity] = make(map[string]float64)
		}
		t.PricingMatrix[m.OriginCity][m.DestinationCity] = m.UnitRate
	}
	for _, p := range packaging {
		t.PackagingFees[p.PackagingType] = p.Fee
	}
	for _, m := range multipliers {
		if table := categoryTable(&t, m.Category); table != nil {
			table[m.Name] = m.Value
		}
	}
	for _, rate := range inCity {
		t.InCityPricing[rate.City] = pricing.InCityRate{
			BaseFare:            rate.BaseFare,
			DistanceChargePerKm: rate.DistanceChargePerKm,
			TimeChargePerMinute: rate.TimeChargePerMinute,
			BaseRatePerKm:       rate.BaseRatePerKm,
			MinimumFare:         rate.MinimumFare,
			PeakHourMultiplier:  rate.PeakHourMultiplier,
		}
	}
	for _, v := range vehicles {
		if t.VehicleTypeMultipliers[v.City] == nil {
			t.VehicleTypeMultipliers[v.City] = make(map[string]float64)
		}
		t.VehicleTypeMultipliers[v.City][v.VehicleType] = v.Multiplier
	}
	for _, f := range fees {
		t.AdditionalFees[f.City] = append(t.AdditionalFees[f.City], pricing.Fee{
			Name:        f.Name,
			Amount:      f.Amount,
			Description: f.Description,
		})
	}
	if len(settings) > 0 {
		t.DefaultRatePerKm = settings[0].DefaultRatePerKm
		t.MinimumCharge = settings[0].MinimumCharge
	}

	return pricing.NewConfig(t)
}

// Save replaces every rate table with the given ones. The tables are validated
// first, so an invalid set leaves storage untouched.
func (r *GormPricingConfigRepository) Save(ctx context.Context, t pricing.Tables) error {
	if _, err := pricing.NewConfig(t); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range Models() {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		cities := make([]CityDTO, 0, len(t.Cities))
		for _, name := range t.Cities {
			cities = append(cities, CityDTO{Name: name})
		}

		var matrix []MatrixRateDTO
		for _, from := range sortedKeys(t.PricingMatrix) {
			for _, to := range sortedKeys(t.PricingMatrix[from]) {
				matrix = append(matrix, MatrixRateDTO{
					OriginCity:      from,
					DestinationCity: to,
					UnitRate:        t.PricingMatrix[from][to],
				})
			}
		}

		var packaging []PackagingFeeDTO
		for _, name := range sortedKeys(t.PackagingFees) {
			packaging = append(packaging, PackagingFeeDTO{PackagingType: name, Fee: t.PackagingFees[name]})
		}

		var multipliers []MultiplierDTO
		for _, category := range []string{
			CategoryCustomerType,
			CategoryOrderType,
			CategoryGoodsType,
			CategorySubscriptionType,
			CategoryPremiumType,
		} {
			table := categoryTable(&t, category)
			for _, name := range sortedKeys(table) {
				multipliers = append(multipliers, MultiplierDTO{Category: category, Name: name, Value: table[name]})
			}
		}

		var inCity []InCityRateDTO
		for _, city := range sortedKeys(t.InCityPricing) {
			rate := t.InCityPricing[city]
			inCity = append(inCity, InCityRateDTO{
				City:                city,
				BaseFare:            rate.BaseFare,
				DistanceChargePerKm: rate.DistanceChargePerKm,
				TimeChargePerMinute: rate.TimeChargePerMinute,
				BaseRatePerKm:       rate.BaseRatePerKm,
				MinimumFare:         rate.MinimumFare,
				PeakHourMultiplier:  rate.PeakHourMultiplier,
			})
		}

		var vehicles []VehicleMultiplierDTO
		for _, city := range sortedKeys(t.VehicleTypeMultipliers) {
			for _, vehicle := range sortedKeys(t.VehicleTypeMultipliers[city]) {
				vehicles = append(vehicles, VehicleMultiplierDTO{
					City:        city,
					VehicleType: vehicle,
					Multiplier:  t.VehicleTypeMultipliers[city][vehicle],
				})
			}
		}

		var fees []AdditionalFeeDTO
		for _, city := range sortedKeys(t.AdditionalFees) {
			for i, fee := range t.AdditionalFees[city] {
				fees = append(fees, AdditionalFeeDTO{
					City:        city,
					Position:    i,
					Name:        fee.Name,
					Amount:      fee.Amount,
					Description: fee.Description,
				})
			}
		}

		settings := []SettingsDTO{{
			ID:               settingsID,
			DefaultRatePerKm: t.DefaultRatePerKm,
			MinimumCharge:    t.MinimumCharge,
		}}

		return errors.Join(
			createAll(tx, cities),
			createAll(tx, matrix),
			createAll(tx, packaging),
			createAll(tx, multipliers),
			createAll(tx, inCity),
			createAll(tx, vehicles),
			createAll(tx, fees),
			createAll(tx, settings),
		)
	})
}

func categoryTable(t *pricing.Tables, category string) map[string]float64 {
	switch category {
	case CategoryCustomerType:
		if t.CustomerTypeMultipliers == nil {
			t.CustomerTypeMultipliers = make(map[string]float64)
		}
		return t.CustomerTypeMultipliers
	case CategoryOrderType:
		if t.OrderTypeMultipliers == nil {
			t.OrderTypeMultipliers = make(map[string]float64)
		}
		return t.OrderTypeMultipliers
	case CategoryGoodsType:
		if t.GoodsTypeMultipliers == nil {
			t.GoodsTypeMultipliers = make(map[string]float64)
		}
		return t.GoodsTypeMultipliers
	case CategorySubscriptionType:
		if t.SubscriptionTypeMultipliers == nil {
			t.SubscriptionTypeMultipliers = make(map[string]float64)
		}
		return t.SubscriptionTypeMultipliers
	case CategoryPremiumType:
		if t.PremiumTypeMultipliers == nil {
			t.PremiumTypeMultipliers = make(map[string]float64)
		}
		return t.PremiumTypeMultipliers
	default:
		return nil
	}
}

func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
