package cii

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReductionFactor(t *testing.T) {
	want := map[int]float64{
		2019: 0.00, 2020: 0.01, 2021: 0.02, 2022: 0.03,
		2023: 0.05, 2024: 0.07, 2025: 0.09, 2026: 0.11,
		2027: 0.13, 2028: 0.15, 2029: 0.17, 2030: 0.19,
	}
	for year, factor := range want {
		got, err := ReductionFactor(year)
		require.NoError(t, err)
		assert.InDelta(t, factor, got, 1e-12, "year %d", year)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 1.0)
	}

	for _, year := range []int{0, 2018, 2031, 2050} {
		_, err := ReductionFactor(year)
		assert.ErrorIs(t, err, ErrUnsupportedYear, "year %d", year)
	}
}

func TestAttainedIntensity(t *testing.T) {
	got, err := AttainedIntensity(71_585e6, 3.75e9)
	require.NoError(t, err)
	assert.InDelta(t, 19.089333, got, 1e-6)

	_, err = AttainedIntensity(0, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = AttainedIntensity(100, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = AttainedIntensity(-1, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReferenceIntensity(t *testing.T) {
	tests := []struct {
		name     string
		shipType ShipType
		capacity float64
		want     float64
	}{
		{
			name:     "roro passenger",
			shipType: ShipTypeRoRoPassengerShip,
			capacity: 25000,
			want:     2023 * math.Pow(25000, -0.46),
		},
		{
			name:     "gas carrier lower tier",
			shipType: ShipTypeGasCarrier,
			capacity: 60000,
			want:     8104 * math.Pow(60000, -0.639),
		},
		{
			name:     "gas carrier upper tier",
			shipType: ShipTypeGasCarrier,
			capacity: 80000,
			want:     14405e7 * math.Pow(80000, -2.071),
		},
		{
			name:     "lng carrier flat above 100k",
			shipType: ShipTypeLNGCarrier,
			capacity: 150000,
			want:     9.827,
		},
		{
			name:     "general cargo small",
			shipType: ShipTypeGeneralCargoShip,
			capacity: 8000,
			want:     588 * math.Pow(8000, -0.3885),
		},
		{
			name:     "general cargo large",
			shipType: ShipTypeGeneralCargoShip,
			capacity: 25000,
			want:     31948 * math.Pow(25000, -0.792),
		},
		{
			name:     "vehicle carrier small",
			shipType: ShipTypeRoRoVehicleCarrier,
			capacity: 20000,
			want:     330 * math.Pow(20000, -0.329),
		},
		{
			name:     "combination carrier",
			shipType: ShipTypeCombinationCarrier,
			capacity: 70000,
			want:     5119 * math.Pow(70000, -0.622),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReferenceIntensity(tt.shipType, tt.capacity)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.want*1e-12)
		})
	}
}

func TestReferenceCoefficients(t *testing.T) {
	tests := []struct {
		name     string
		shipType ShipType
		capacity float64
		a, c     float64
	}{
		{"bulk carrier", ShipTypeBulkCarrier, 80000, 4745, 0.622},
		{"gas carrier below 65k", ShipTypeGasCarrier, 64999, 8104, 0.639},
		{"gas carrier at 65k", ShipTypeGasCarrier, 65000, 14405e7, 2.071},
		{"tanker", ShipTypeTanker, 100000, 5247, 0.610},
		{"container ship", ShipTypeContainerShip, 50000, 1984, 0.489},
		{"general cargo below 20k", ShipTypeGeneralCargoShip, 19999, 588, 0.3885},
		{"general cargo at 20k", ShipTypeGeneralCargoShip, 20000, 31948, 0.792},
		{"refrigerated cargo carrier", ShipTypeRefrigeratedCargoCarrier, 10000, 4600, 0.557},
		{"combination carrier", ShipTypeCombinationCarrier, 70000, 5119, 0.622},
		{"lng carrier below 65k", ShipTypeLNGCarrier, 64999, 14779e10, 2.673},
		{"lng carrier at 65k", ShipTypeLNGCarrier, 65000, 14479e10, 2.673},
		{"lng carrier below 100k", ShipTypeLNGCarrier, 99999, 14479e10, 2.673},
		{"lng carrier at 100k", ShipTypeLNGCarrier, 100000, 9.827, 0},
		{"roro vehicle below 30k", ShipTypeRoRoVehicleCarrier, 29999, 330, 0.329},
		{"roro vehicle at 30k", ShipTypeRoRoVehicleCarrier, 30000, 5739, 0.590},
		{"roro vehicle below 57.7k", ShipTypeRoRoVehicleCarrier, 57699, 5739, 0.590},
		{"roro vehicle at 57.7k", ShipTypeRoRoVehicleCarrier, 57700, 3627, 0.590},
		{"roro cargo ship", ShipTypeRoRoCargoShip, 15000, 1967, 0.485},
		{"roro passenger ship", ShipTypeRoRoPassengerShip, 25000, 2023, 0.460},
		{"roro passenger high speed", ShipTypeRoRoPassengerShipHighSpeed, 5000, 4196, 0.460},
		{"cruise passenger ship", ShipTypeCruisePassengerShip, 90000, 930, 0.383},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, c, err := referenceCoefficients(tt.shipType, tt.capacity)
			require.NoError(t, err)
			assert.InDelta(t, tt.a, a, 0)
			assert.InDelta(t, tt.c, c, 0)

			got, err := ReferenceIntensity(tt.shipType, tt.capacity)
			require.NoError(t, err)
			want := tt.a * math.Pow(tt.capacity, -tt.c)
			assert.InDelta(t, want, got, want*1e-12)
		})
	}

	_, _, err := referenceCoefficients(ShipTypeUnknown, 1000)
	assert.ErrorIs(t, err, ErrUnsupportedShipType)
}

func TestRequiredIntensity(t *testing.T) {
	reference := 2023 * math.Pow(25000, -0.46)

	got, err := RequiredIntensity(ShipTypeRoRoPassengerShip, 25000, 2019)
	require.NoError(t, err)
	assert.InDelta(t, reference, got, 1e-12)

	got, err = RequiredIntensity(ShipTypeRoRoPassengerShip, 25000, 2030)
	require.NoError(t, err)
	assert.InDelta(t, reference*0.81, got, 1e-12)
}

func TestRequiredIntensity_Errors(t *testing.T) {
	_, err := RequiredIntensity(ShipTypeTanker, 0, 2023)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = RequiredIntensity(ShipTypeTanker, -100, 2023)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = RequiredIntensity(ShipTypeTanker, 50000, 2031)
	assert.ErrorIs(t, err, ErrUnsupportedYear)

	_, err = RequiredIntensity(ShipTypeUnknown, 50000, 2023)
	assert.ErrorIs(t, err, ErrUnsupportedShipType)
}

func TestRequiredIntensity_NonIncreasingByYear(t *testing.T) {
	for _, st := range ShipTypes() {
		for _, capacity := range []float64{5000, 30000, 65000, 120000} {
			prev := math.Inf(1)
			for year := FirstYear; year <= LastYear; year++ {
				got, err := RequiredIntensity(st, capacity, year)
				require.NoError(t, err)
				assert.LessOrEqual(t, got, prev, "%s capacity %v year %d", st, capacity, year)
				prev = got
			}
		}
	}
}

func TestRequiredIntensityByYear(t *testing.T) {
	byYear, err := RequiredIntensityByYear(ShipTypeBulkCarrier, 80000)
	require.NoError(t, err)
	assert.Len(t, byYear, YearCount)

	for year := FirstYear; year <= LastYear; year++ {
		want, err := RequiredIntensity(ShipTypeBulkCarrier, 80000, year)
		require.NoError(t, err)
		assert.InDelta(t, want, byYear[year], 1e-12)
	}

	_, err = RequiredIntensityByYear(ShipTypeUnknown, 80000)
	assert.ErrorIs(t, err, ErrUnsupportedShipType)
}
