package services

import (
	"math"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// NormalizeCity trims the name and, when knownCities is not empty, returns the
// canonical casing of a case-insensitive match. Unknown names are returned trimmed.
func NormalizeCity(name string, knownCities []string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if match, ok := matchCity(name, knownCities); ok {
		return match
	}
	return name
}

// ExtractCityFromAddress resolves the city of a comma separated address and
// returns defaultCity when no known city can be found.
func ExtractCityFromAddress(address string, knownCities []string, defaultCity string) string {
	if city, ok := LookupCityInAddress(address, knownCities); ok {
		return city
	}
	return defaultCity
}

// LookupCityInAddress looks for a known city among the address segments.
// The last segment is tried first, then the second to last, then every segment
// in order, first exactly and then case-insensitively. The boolean is false
// when nothing matched.
func LookupCityInAddress(address string, knownCities []string) (string, bool) {
	if strings.TrimSpace(address) == "" || len(knownCities) == 0 {
		return "", false
	}

	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if last := parts[len(parts)-1]; slices.Contains(knownCities, last) {
		return last, true
	}
	if len(parts) > 1 {
		if secondLast := parts[len(parts)-2]; slices.Contains(knownCities, secondLast) {
			return secondLast, true
		}
	}

	for _, part := range parts {
		if part == "" {
			continue
		}
		if slices.Contains(knownCities, part) {
			return part, true
		}
		if match, ok := matchCity(part, knownCities); ok {
			return match, true
		}
	}

	return "", false
}

// CityForLocation returns the city of the eligible warehouse nearest to loc.
// It is the coordinate based fallback used when an address names no known city.
func CityForLocation(loc kernel.Location, warehouses []*warehouse.Warehouse) (string, bool) {
	if loc.Validate() != nil {
		return "", false
	}

	var (
		city     string
		shortest = math.Inf(1)
	)
	for _, w := range warehouses {
		if !w.IsEligible() || w.City() == "" {
			continue
		}
		wl, err := w.Location()
		if err != nil {
			continue
		}
		d, err := loc.DistanceTo(wl)
		if err != nil {
			continue
		}
		if d < shortest {
			shortest = d
			city = w.City()
		}
	}

	return city, city != ""
}

func matchCity(name string, knownCities []string) (string, bool) {
	for _, city := range knownCities {
		if strings.EqualFold(city, name) {
			return city, true
		}
	}
	return "", false
}
