package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(id,
		"  Piassa, Addis Ababa ", "9.0350, 38.7520",
		"Bole, Addis Ababa", "8.9806,38.7578",
		commands.ShipmentDetails{
			DeliveryType:    "in_city",
			OriginCity:      " Addis Ababa ",
			DistanceInKm:    12,
			CustomerType:    " BUSINESS ",
			ActualWeight:    2,
			Length:          50,
			Width:           40,
			Height:          30,
			VehicleType:     "VAN",
			HasSubscription: true,
		})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, "Piassa, Addis Ababa", cmd.PickupAddress())
	assert.Equal(t, "9.035,38.752", cmd.Pickup().String())
	assert.Equal(t, "Bole, Addis Ababa", cmd.DropoffAddress())
	assert.Equal(t, "Addis Ababa", cmd.OriginCityHint())
	assert.Empty(t, cmd.DestinationCityHint())

	params := cmd.Params()
	assert.Equal(t, pricing.InCity, params.DeliveryType)
	assert.Equal(t, "BUSINESS", params.CustomerType)
	assert.True(t, params.HasSubscription)
	assert.InDelta(t, 12.0, params.DistanceInKm, 1e-9)
	assert.InDelta(t, 12.0, params.DimensionalWeight, 1e-9)
	assert.InDelta(t, 12.0, params.EffectiveWeight(), 1e-9)
	assert.Empty(t, params.OriginCity)
	assert.Empty(t, params.DestinationCity)
}

func TestNewCreateOrderCommand_Errors(t *testing.T) {
	valid := commands.ShipmentDetails{DeliveryType: "BETWEEN_CITIES", ActualWeight: 1}

	tests := []struct {
		name           string
		id             kernel.UUID
		pickupAddress  string
		pickup         string
		dropoffAddress string
		dropoff        string
		details        commands.ShipmentDetails
		wantErr        error
	}{
		{
			name:    "zero order id",
			pickup:  "9.0,38.7", pickupAddress: "A",
			dropoff: "8.5,39.2", dropoffAddress: "B",
			details: valid,
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "blank pickup address",
			id:   kernel.NewUUID(), pickupAddress: "  ", pickup: "9.0,38.7",
			dropoffAddress: "B", dropoff: "8.5,39.2",
			details: valid,
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "malformed pickup coordinates",
			id:   kernel.NewUUID(), pickupAddress: "A", pickup: "9.0;38.7",
			dropoffAddress: "B", dropoff: "8.5,39.2",
			details: valid,
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "blank dropoff address",
			id:   kernel.NewUUID(), pickupAddress: "A", pickup: "9.0,38.7",
			dropoffAddress: "", dropoff: "8.5,39.2",
			details: valid,
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name: "unknown delivery type",
			id:   kernel.NewUUID(), pickupAddress: "A", pickup: "9.0,38.7",
			dropoffAddress: "B", dropoff: "8.5,39.2",
			details: commands.ShipmentDetails{DeliveryType: "OVERNIGHT", ActualWeight: 1},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "zero weight",
			id:   kernel.NewUUID(), pickupAddress: "A", pickup: "9.0,38.7",
			dropoffAddress: "B", dropoff: "8.5,39.2",
			details: commands.ShipmentDetails{DeliveryType: "IN_CITY"},
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "negative distance",
			id:   kernel.NewUUID(), pickupAddress: "A", pickup: "9.0,38.7",
			dropoffAddress: "B", dropoff: "8.5,39.2",
			details: commands.ShipmentDetails{DeliveryType: "IN_CITY", ActualWeight: 1, DistanceInKm: -3},
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateOrderCommand(tt.id,
				tt.pickupAddress, tt.pickup, tt.dropoffAddress, tt.dropoff, tt.details)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
		})
	}
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
