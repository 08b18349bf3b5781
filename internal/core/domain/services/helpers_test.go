package services_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

func newWarehouse(t *testing.T, name string, lat, lng float64, city string) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), name, fmt.Sprintf("%v,%v", lat, lng), city, warehouse.Active)
	require.NoError(t, err)
	return w
}

func newRawWarehouse(t *testing.T, name, mapLocation, city string, status warehouse.Status) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), name, mapLocation, city, status)
	require.NoError(t, err)
	return w
}

func location(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

func names(ws []*warehouse.Warehouse) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Name())
	}
	return out
}
