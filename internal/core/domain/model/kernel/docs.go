// Package kernel holds the shared value objects of the logistics domain:
// identifiers (UUID), geographic positions (Location) and the great-circle
// geometry used to compare them.
//
// Coordinates travel through the system as "lat,lng" strings; ParseLocation
// and Location.String convert between that form and the validated value.
package kernel
