// Package warehouserepo persists warehouse records in the "warehouses" table.
package warehouserepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO is the database shape of a warehouse. The status is stored by
// name and the map location verbatim, including unusable values.
type WarehouseDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	MapLocation string    `gorm:"type:varchar(64)"`
	City        string    `gorm:"index"`
	Status      string    `gorm:"type:varchar(16);index"`
}

// TableName overrides GORM's default naming.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:          w.ID().Bytes(),
		Name:        w.Name(),
		MapLocation: w.MapLocation(),
		City:        w.City(),
		Status:      w.Status().String(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := warehouse.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return warehouse.NewWarehouse(id, dto.Name, dto.MapLocation, dto.City, status)
}
