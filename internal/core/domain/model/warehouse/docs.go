// Package warehouse models the facilities shipments are routed through.
//
// Warehouses are reference data owned by operations staff. Their coordinates
// are kept in the raw "lat,lng" form they were stored in, so a record with a
// malformed or placeholder position still loads; such warehouses are simply
// not eligible for routing.
package warehouse
