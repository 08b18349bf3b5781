package kernel

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the haversine great-circle distance in kilometres between
// two points given in decimal degrees. Inputs are not validated.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := DegreesToRadians(lat2 - lat1)
	dLng := DegreesToRadians(lng2 - lng1)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	a := sinLat*sinLat +
		math.Cos(DegreesToRadians(lat1))*math.Cos(DegreesToRadians(lat2))*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
