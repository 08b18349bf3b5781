package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "addis ababa", lat: 9.0108, lng: 38.7613},
		{name: "bounds inclusive", lat: 90, lng: -180},
		{name: "origin is a valid position", lat: 0, lng: 0},
		{name: "latitude too large", lat: 90.0001, lng: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lng: -180.5, wantErr: true},
		{name: "nan latitude", lat: math.NaN(), lng: 10, wantErr: true},
		{name: "nan longitude", lat: 10, lng: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				require.Error(t, loc.Validate())
				return
			}

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.InDelta(t, tt.lat, loc.Lat(), 1e-12)
			assert.InDelta(t, tt.lng, loc.Lng(), 1e-12)
		})
	}
}

func TestNewLocation_JoinsBothRangeErrors(t *testing.T) {
	_, err := kernel.NewLocation(100, 200)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
}

func TestParseLocation(t *testing.T) {
	t.Run("plain pair", func(t *testing.T) {
		loc, err := kernel.ParseLocation("9.0108,38.7613")

		require.NoError(t, err)
		assert.InDelta(t, 9.0108, loc.Lat(), 1e-12)
		assert.InDelta(t, 38.7613, loc.Lng(), 1e-12)
	})

	t.Run("whitespace is tolerated", func(t *testing.T) {
		loc, err := kernel.ParseLocation(" 8.54 , 39.27 ")

		require.NoError(t, err)
		assert.Equal(t, "8.54,39.27", loc.String())
	})

	t.Run("malformed strings", func(t *testing.T) {
		for _, input := range []string{"", "9.01", "9.01,38.76,1", "abc,38.76", "9.01,"} {
			_, err := kernel.ParseLocation(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})

	t.Run("out of range values", func(t *testing.T) {
		_, err := kernel.ParseLocation("91,0")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLocation_String(t *testing.T) {
	loc, err := kernel.NewLocation(-33.8688, 151.2093)
	require.NoError(t, err)

	parsed, err := kernel.ParseLocation(loc.String())
	require.NoError(t, err)

	equal, err := loc.IsEqual(parsed)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestLocation_IsOrigin(t *testing.T) {
	origin, _ := kernel.NewLocation(0, 0)
	other, _ := kernel.NewLocation(0, 0.0001)

	assert.True(t, origin.IsOrigin())
	assert.False(t, other.IsOrigin())
}

func TestLocation_ZeroValue(t *testing.T) {
	var loc kernel.Location
	valid, _ := kernel.NewLocation(1, 1)

	require.ErrorIs(t, loc.Validate(), kernel.ErrLocationIsNotConstructed)

	_, err := loc.DistanceTo(valid)
	require.Error(t, err)

	_, err = valid.IsEqual(loc)
	require.Error(t, err)
}

func TestLocation_DistanceTo(t *testing.T) {
	addis, _ := kernel.NewLocation(9.0108, 38.7613)
	adama, _ := kernel.NewLocation(8.5400, 39.2700)

	d, err := addis.DistanceTo(adama)

	require.NoError(t, err)
	assert.InDelta(t, 76.4, d, 1.0)
}
