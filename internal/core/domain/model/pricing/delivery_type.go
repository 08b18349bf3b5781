package pricing

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// DeliveryType selects the pricing and routing mode of an order.
type DeliveryType string

const (
	// InCity trips are priced by distance and time within one city.
	InCity DeliveryType = "IN_CITY"
	// BetweenCities trips are priced by weight against the origin/destination matrix.
	BetweenCities DeliveryType = "BETWEEN_CITIES"
)

// ParseDeliveryType accepts the wire names case-insensitively.
func ParseDeliveryType(s string) (DeliveryType, error) {
	dt := DeliveryType(strings.ToUpper(strings.TrimSpace(s)))
	if err := dt.Validate(); err != nil {
		return "", err
	}
	return dt, nil
}

// Validate rejects anything but InCity and BetweenCities.
func (d DeliveryType) Validate() error {
	switch d {
	case InCity, BetweenCities:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%q is not a valid delivery type", string(d)))
	}
}

func (d DeliveryType) String() string {
	return string(d)
}
