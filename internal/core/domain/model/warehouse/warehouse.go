package warehouse

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrWarehouseIsNotConstructed is returned when a Warehouse was not built by NewWarehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

	// ErrWarehouseHasNoCoordinates is returned by Location for the (0,0) placeholder.
	ErrWarehouseHasNoCoordinates = errs.NewValueIsRequiredError("warehouse coordinates")
)

// Warehouse is a facility identified by id, located by its "lat,lng" map location.
//
// Invariants:
//   - id is a valid UUID
//   - name is not blank
//   - status is a known Status
//
// The map location is not validated at construction; Location parses it on demand.
type Warehouse struct {
	id          kernel.UUID
	name        string
	mapLocation string
	city        string
	status      Status

	isConstructed bool
}

// NewWarehouse builds a warehouse record.
//
// Example:
//
//	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Bole Hub", "8.9806,38.7578", "Addis Ababa", warehouse.Active)
func NewWarehouse(id kernel.UUID, name, mapLocation, city string, status Status) (*Warehouse, error) {
	w := &Warehouse{
		mapLocation:   strings.TrimSpace(mapLocation),
		city:          strings.TrimSpace(city),
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setStatus(status),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate reports whether the warehouse was built by NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// ID returns the warehouse identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the display name.
func (w *Warehouse) Name() string {
	return w.name
}

// MapLocation returns the raw "lat,lng" string as stored.
func (w *Warehouse) MapLocation() string {
	return w.mapLocation
}

// City returns the city the warehouse is located in.
func (w *Warehouse) City() string {
	return w.city
}

// Status returns the operational state.
func (w *Warehouse) Status() Status {
	return w.status
}

// IsEqual compares two warehouses by identifier.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// InCity reports whether the warehouse lies in the named city (case-insensitive).
func (w *Warehouse) InCity(city string) bool {
	return strings.EqualFold(w.city, strings.TrimSpace(city))
}

// Location parses the map location. It fails for malformed or out-of-range
// strings and for the (0,0) placeholder.
func (w *Warehouse) Location() (kernel.Location, error) {
	loc, err := kernel.ParseLocation(w.mapLocation)
	if err != nil {
		return kernel.Location{}, err
	}
	if loc.IsOrigin() {
		return kernel.Location{}, ErrWarehouseHasNoCoordinates
	}
	return loc, nil
}

// IsEligible reports whether the warehouse can take part in routing:
// it must be Active and have usable coordinates.
func (w *Warehouse) IsEligible() bool {
	if w.Validate() != nil || w.status != Active {
		return false
	}
	_, err := w.Location()
	return err == nil
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	w.status = status
	return nil
}
