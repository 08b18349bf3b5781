package kernel

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// LatitudeMin is the lowest valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the highest valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the lowest valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the highest valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

var (
	// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
	ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
		"location must be created via NewLocation or ParseLocation")

	// ErrLocationFormat is returned when a coordinate string is not of the form "lat,lng".
	ErrLocationFormat = errors.New(`coordinates must have the form "lat,lng"`)
)

// Location is an immutable geographic position in decimal degrees.
// The zero value is invalid; build instances with NewLocation or ParseLocation.
//
// Example:
//
//	loc, err := kernel.ParseLocation("9.0108,38.7613")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // 9.0108,38.7613
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation validates the latitude and longitude ranges and returns a Location.
//
// Parameters:
//   - lat: latitude in [-90, 90]
//   - lng: longitude in [-180, 180]
//
// Returns:
//   - Location: the validated position
//   - error: every range violation joined together
func NewLocation(lat, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation parses the textual "lat,lng" form used by persistence and the
// HTTP API. Whitespace around either component is ignored and no precision is
// enforced.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("coordinates", ErrLocationFormat)
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err := errors.Join(latErr, lngErr); err != nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("coordinates", errors.Join(ErrLocationFormat, err))
	}

	return NewLocation(lat, lng)
}

// Validate reports whether the Location was built by a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in decimal degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// IsOrigin reports whether the location is the (0,0) point, which stored
// records use as a "no coordinates" placeholder.
func (l Location) IsOrigin() bool {
	return l.lat == 0 && l.lng == 0
}

// String renders the location in the "lat,lng" form accepted by ParseLocation.
func (l Location) String() string {
	return strconv.FormatFloat(l.lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.lng, 'f', -1, 64)
}

// IsEqual compares two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng, nil
}

// DistanceTo returns the great-circle distance in kilometres to another location.
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return DistanceKm(l.lat, l.lng, other.lat, other.lng), nil
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	l.lng = lng
	return nil
}
