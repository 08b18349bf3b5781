// Package pricingrepo stores the pricing rate tables and materialises them
// into pricing.Config snapshots.
package pricingrepo

// Multiplier categories stored in the "pricing_multipliers" table.
const (
	CategoryCustomerType     = "customer_type"
	CategoryOrderType        = "order_type"
	CategoryGoodsType        = "goods_type"
	CategorySubscriptionType = "subscription_type"
	CategoryPremiumType      = "premium_type"
)

// settingsID is the primary key of the single pricing_settings row.
const settingsID = 1

// CityDTO is a canonical city name.
type CityDTO struct {
	Name string `gorm:"primaryKey"`
}

// TableName overrides GORM's default naming.
func (CityDTO) TableName() string { return "cities" }

// MatrixRateDTO is the per-kg rate between two cities.
type MatrixRateDTO struct {
	OriginCity      string `gorm:"primaryKey"`
	DestinationCity string `gorm:"primaryKey"`
	UnitRate        float64
}

// TableName overrides GORM's default naming.
func (MatrixRateDTO) TableName() string { return "pricing_matrix" }

// PackagingFeeDTO is the flat fee of a packaging type.
type PackagingFeeDTO struct {
	PackagingType string `gorm:"primaryKey"`
	Fee           float64
}

// TableName overrides GORM's default naming.
func (PackagingFeeDTO) TableName() string { return "packaging_fees" }

// MultiplierDTO is one coefficient of a multiplier category.
type MultiplierDTO struct {
	Category string `gorm:"primaryKey;type:varchar(32)"`
	Name     string `gorm:"primaryKey"`
	Value    float64
}

// TableName overrides GORM's default naming.
func (MultiplierDTO) TableName() string { return "pricing_multipliers" }

// InCityRateDTO is the tariff of one city.
type InCityRateDTO struct {
	City                string `gorm:"primaryKey"`
	BaseFare            float64
	DistanceChargePerKm float64
	TimeChargePerMinute float64
	BaseRatePerKm       float64
	MinimumFare         float64
	PeakHourMultiplier  float64
}

// TableName overrides GORM's default naming.
func (InCityRateDTO) TableName() string { return "in_city_pricing" }

// VehicleMultiplierDTO is the coefficient of a vehicle type in a city.
type VehicleMultiplierDTO struct {
	City        string `gorm:"primaryKey"`
	VehicleType string `gorm:"primaryKey"`
	Multiplier  float64
}

// TableName overrides GORM's default naming.
func (VehicleMultiplierDTO) TableName() string { return "vehicle_type_multipliers" }

// AdditionalFeeDTO is a flat surcharge of a city. Position keeps the
// configured order.
type AdditionalFeeDTO struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	City        string `gorm:"index"`
	Position    int
	Name        string
	Amount      float64
	Description string
}

// TableName overrides GORM's default naming.
func (AdditionalFeeDTO) TableName() string { return "additional_fees" }

// SettingsDTO holds the scalar pricing settings.
type SettingsDTO struct {
	ID               int `gorm:"primaryKey;autoIncrement:false"`
	DefaultRatePerKm float64
	MinimumCharge    float64
}

// TableName overrides GORM's default naming.
func (SettingsDTO) TableName() string { return "pricing_settings" }

// Models lists every table of the package for migrations.
func Models() []any {
	return []any{
		&CityDTO{},
		&MatrixRateDTO{},
		&PackagingFeeDTO{},
		&MultiplierDTO{},
		&InCityRateDTO{},
		&VehicleMultiplierDTO{},
		&AdditionalFeeDTO{},
		&SettingsDTO{},
	}
}
