package route_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWarehouse(t *testing.T, name string) *warehouse.Warehouse {
	t.Helper()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), name, "9,38", "Addis Ababa", warehouse.Active)
	require.NoError(t, err)
	return w
}

func TestNewSingleFacility(t *testing.T) {
	hub := newWarehouse(t, "hub")

	r, err := route.NewSingleFacility(hub)

	require.NoError(t, err)
	assert.True(t, r.IsSingleFacility())
	assert.Same(t, hub, r.Origin())
	assert.Same(t, hub, r.Destination())
	assert.Equal(t, []*warehouse.Warehouse{hub}, r.Warehouses())
}

func TestNewRoute(t *testing.T) {
	from := newWarehouse(t, "from")
	to := newWarehouse(t, "to")

	r, err := route.NewRoute(from, to)

	require.NoError(t, err)
	assert.False(t, r.IsSingleFacility())
	assert.Equal(t, []*warehouse.Warehouse{from, to}, r.Warehouses())

	_, err = route.NewRoute(from, nil)
	require.ErrorIs(t, err, warehouse.ErrWarehouseIsNotConstructed)
}

func TestRoute_WithIntermediates(t *testing.T) {
	from := newWarehouse(t, "from")
	mid1 := newWarehouse(t, "mid1")
	mid2 := newWarehouse(t, "mid2")
	to := newWarehouse(t, "to")
	base, _ := route.NewRoute(from, to)

	t.Run("stops are inserted in order", func(t *testing.T) {
		r, err := base.WithIntermediates([]*warehouse.Warehouse{mid1, mid2})

		require.NoError(t, err)
		assert.Equal(t, []*warehouse.Warehouse{from, mid1, mid2, to}, r.Warehouses())
		assert.Equal(t, []*warehouse.Warehouse{from, to}, base.Warehouses(), "original route is unchanged")
	})

	t.Run("no stops keeps the route", func(t *testing.T) {
		r, err := base.WithIntermediates(nil)
		require.NoError(t, err)
		assert.Len(t, r.Warehouses(), 2)
	})

	t.Run("too many stops", func(t *testing.T) {
		_, err := base.WithIntermediates([]*warehouse.Warehouse{mid1, mid2, newWarehouse(t, "mid3")})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("single facility cannot take stops", func(t *testing.T) {
		single, _ := route.NewSingleFacility(from)
		_, err := single.WithIntermediates([]*warehouse.Warehouse{mid1})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero route", func(t *testing.T) {
		_, err := route.Route{}.WithIntermediates([]*warehouse.Warehouse{mid1})
		require.ErrorIs(t, err, route.ErrRouteIsNotConstructed)
		assert.Nil(t, route.Route{}.Warehouses())
	})
}
