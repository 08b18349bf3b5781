package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptions(ms []*order.Milestone) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Description())
	}
	return out
}

func assertSequence(t *testing.T, ms []*order.Milestone) {
	t.Helper()
	require.NoError(t, order.ValidateSequence(ms))
	for i, m := range ms {
		assert.Equal(t, i+1, m.ExecutionOrder())
		assert.Equal(t, i == len(ms)-1, m.IsLast())
		assert.Equal(t, i == 0, m.IsCompleted(), m.Description())
	}
}

func TestMilestoneBuilder_Build(t *testing.T) {
	builder := services.NewMilestoneBuilder()
	pickup := location(t, 9.0108, 38.7613)
	dropoff := location(t, 8.5400, 39.2700)

	t.Run("in-city order", func(t *testing.T) {
		hub := newWarehouse(t, "Bole", 9.01, 38.76, "Addis Ababa")
		r, err := route.NewSingleFacility(hub)
		require.NoError(t, err)

		ms, err := builder.Build(pickup, dropoff, r, "Addis Ababa", "Addis Ababa", true)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Order Created", "Order Accepted", "Order Assigned", "Items Collected", "In Transit", "Delivered to Customer",
		}, descriptions(ms))
		assertSequence(t, ms)
		for _, m := range ms[:5] {
			assert.Equal(t, "9.0108,38.7613", m.Coordinates().String())
			assert.True(t, m.WarehouseID().IsEqual(hub.ID()))
		}
		assert.Equal(t, "8.54,39.27", ms[5].Coordinates().String())
		assert.True(t, ms[5].WarehouseID().IsEqual(hub.ID()))
	})

	t.Run("inter-city order with two warehouses", func(t *testing.T) {
		bole := newWarehouse(t, "Bole", 9.01, 38.76, "Addis Ababa")
		adama := newWarehouse(t, "Adama", 8.56, 39.29, "Adama")
		r, err := route.NewRoute(bole, adama)
		require.NoError(t, err)

		ms, err := builder.Build(pickup, dropoff, r, "Addis Ababa", "Adama", false)

		require.NoError(t, err)
		require.Len(t, ms, 6)
		assertSequence(t, ms)
		shipped := ms[4]
		assert.Equal(t, "Shipped (from Addis Ababa to Adama)", shipped.Description())
		assert.Equal(t, "8.56,39.29", shipped.Coordinates().String())
		assert.True(t, shipped.WarehouseID().IsEqual(adama.ID()))
		assert.True(t, ms[3].WarehouseID().IsEqual(bole.ID()))
		assert.True(t, ms[5].WarehouseID().IsEqual(adama.ID()))
	})

	t.Run("inter-city order with one warehouse", func(t *testing.T) {
		bole := newWarehouse(t, "Bole", 9.01, 38.76, "Addis Ababa")
		r, err := route.NewSingleFacility(bole)
		require.NoError(t, err)

		ms, err := builder.Build(pickup, dropoff, r, "Addis Ababa", "Adama", false)

		require.NoError(t, err)
		require.Len(t, ms, 6)
		assert.Equal(t, "Shipped (from Addis Ababa to Adama)", ms[4].Description())
		assert.True(t, ms[4].WarehouseID().IsEqual(bole.ID()))
		assert.True(t, ms[5].WarehouseID().IsEqual(bole.ID()))
	})

	t.Run("one shipping leg per waypoint pair", func(t *testing.T) {
		origin := newWarehouse(t, "Origin", 1, 30.01, "West Hub")
		stop1 := newWarehouse(t, "Stop 1", 1, 33, "Central West")
		stop2 := newWarehouse(t, "Stop 2", 1, 36, "Central East")
		destination := newWarehouse(t, "Destination", 1, 38.99, "East Hub")
		r, err := route.NewRoute(origin, destination)
		require.NoError(t, err)
		r, err = r.WithIntermediates([]*warehouse.Warehouse{stop1, stop2})
		require.NoError(t, err)

		ms, err := builder.Build(pickup, dropoff, r, "West", "East", false)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Order Created", "Order Accepted", "Order Assigned", "Items Collected",
			"Shipped (from West to Central West)",
			"Shipped (from Central West to Central East)",
			"Shipped (from Central East to East)",
			"Delivered to Customer",
		}, descriptions(ms))
		assertSequence(t, ms)
		assert.True(t, ms[4].WarehouseID().IsEqual(stop1.ID()))
		assert.True(t, ms[5].WarehouseID().IsEqual(stop2.ID()))
		assert.True(t, ms[6].WarehouseID().IsEqual(destination.ID()))
		assert.True(t, ms[7].WarehouseID().IsEqual(destination.ID()))
	})

	t.Run("route must be constructed", func(t *testing.T) {
		_, err := builder.Build(pickup, dropoff, route.Route{}, "Addis Ababa", "Adama", false)

		require.ErrorIs(t, err, route.ErrRouteIsNotConstructed)
	})
}
