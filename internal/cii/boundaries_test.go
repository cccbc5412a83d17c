package cii

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipBoundaries_Multipliers(t *testing.T) {
	tests := []struct {
		name  string
		ship  Ship
		want  [4]float64
		unit  CapacityUnit
		class WeightClassification
	}{
		{
			name: "bulk carrier",
			ship: Ship{Type: ShipTypeBulkCarrier, DeadweightTonnage: 80000},
			want: [4]float64{0.86, 0.94, 1.06, 1.18},
			unit: CapacityUnitDWT, class: WeightClassification{0, math.Inf(1)},
		},
		{
			name: "gas carrier below 65k",
			ship: Ship{Type: ShipTypeGasCarrier, DeadweightTonnage: 60000},
			want: [4]float64{0.85, 0.95, 1.06, 1.25},
			unit: CapacityUnitDWT, class: WeightClassification{0, 65000},
		},
		{
			name: "gas carrier at 65k",
			ship: Ship{Type: ShipTypeGasCarrier, DeadweightTonnage: 65000},
			want: [4]float64{0.81, 0.91, 1.12, 1.44},
			unit: CapacityUnitDWT, class: WeightClassification{65000, math.Inf(1)},
		},
		{
			name: "lng carrier below 100k",
			ship: Ship{Type: ShipTypeLNGCarrier, DeadweightTonnage: 90000},
			want: [4]float64{0.78, 0.92, 1.10, 1.37},
			unit: CapacityUnitDWT, class: WeightClassification{0, 100000},
		},
		{
			name: "lng carrier at 100k",
			ship: Ship{Type: ShipTypeLNGCarrier, DeadweightTonnage: 100000},
			want: [4]float64{0.89, 0.98, 1.06, 1.13},
			unit: CapacityUnitDWT, class: WeightClassification{100000, math.Inf(1)},
		},
		{
			name: "refrigerated cargo",
			ship: Ship{Type: ShipTypeRefrigeratedCargoCarrier, DeadweightTonnage: 9000},
			want: [4]float64{0.78, 0.91, 1.07, 1.20},
			unit: CapacityUnitDWT, class: WeightClassification{0, math.Inf(1)},
		},
		{
			name: "vehicle carrier",
			ship: Ship{Type: ShipTypeRoRoVehicleCarrier, GrossTonnage: 45000},
			want: [4]float64{0.86, 0.94, 1.06, 1.16},
			unit: CapacityUnitGT, class: WeightClassification{0, math.Inf(1)},
		},
		{
			name: "roro passenger",
			ship: Ship{Type: ShipTypeRoRoPassengerShip, GrossTonnage: 25000},
			want: [4]float64{0.76, 0.92, 1.14, 1.30},
			unit: CapacityUnitGT, class: WeightClassification{0, math.Inf(1)},
		},
		{
			name: "cruise passenger",
			ship: Ship{Type: ShipTypeCruisePassengerShip, GrossTonnage: 90000},
			want: [4]float64{0.87, 0.95, 1.06, 1.16},
			unit: CapacityUnitGT, class: WeightClassification{0, math.Inf(1)},
		},
	}

	const required = 10.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShipBoundaries(tt.ship, required, 2023)
			require.NoError(t, err)

			assert.Equal(t, tt.ship.Type, got.ShipType)
			assert.Equal(t, tt.unit, got.CapacityUnit)
			assert.Equal(t, tt.class, got.WeightClassification)
			assert.Equal(t, 2023, got.Year)
			for i, b := range Boundaries() {
				assert.InDelta(t, tt.want[i]*required, got.Value(b), 1e-12, b.String())
			}
		})
	}
}

func TestShipBoundaries_Ordered(t *testing.T) {
	for _, st := range ShipTypes() {
		for _, dwt := range []float64{30000, 65000, 100000} {
			ship := Ship{Type: st, DeadweightTonnage: dwt, GrossTonnage: dwt}
			bs, err := ShipBoundaries(ship, 7.5, 2025)
			require.NoError(t, err)

			assert.Less(t, bs.Value(BoundarySuperior), bs.Value(BoundaryLower), st.String())
			assert.Less(t, bs.Value(BoundaryLower), bs.Value(BoundaryUpper), st.String())
			assert.Less(t, bs.Value(BoundaryUpper), bs.Value(BoundaryInferior), st.String())
			assert.True(t, bs.WeightClassification.Contains(dwt), "%s %v", st, dwt)
		}
	}
}

func TestShipBoundaries_Errors(t *testing.T) {
	_, err := ShipBoundaries(Ship{Type: ShipTypeUnknown, DeadweightTonnage: 1000, GrossTonnage: 1000}, 5, 2023)
	assert.ErrorIs(t, err, ErrUnsupportedShipType)

	_, err = ShipBoundaries(Ship{Type: ShipTypeTanker, GrossTonnage: 1000}, 5, 2023)
	assert.ErrorIs(t, err, ErrInvalidTonnage)

	_, err = ShipBoundaries(Ship{Type: ShipTypeRoRoCargoShip, DeadweightTonnage: 1000}, 5, 2023)
	assert.ErrorIs(t, err, ErrInvalidTonnage)

	_, err = ShipBoundaries(Ship{Type: ShipTypeTanker, DeadweightTonnage: 1000}, 5, 2018)
	assert.ErrorIs(t, err, ErrUnsupportedYear)
}

func TestWeightClassification_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(WeightClassification{Lower: 0, Upper: math.Inf(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower_limit":0,"upper_limit":null}`, string(data))

	data, err = json.Marshal(WeightClassification{Lower: 0, Upper: 65000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower_limit":0,"upper_limit":65000}`, string(data))
}
