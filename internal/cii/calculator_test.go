package cii

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roroPassengerFuel is 12,500 t of diesel and 10,000 t of light fuel oil, in grams.
func roroPassengerFuel() []FuelConsumption {
	return []FuelConsumption{
		{FuelType: FuelTypeDieselOrGasOil, Grams: 12_500e6},
		{FuelType: FuelTypeLightFuelOil, Grams: 10_000e6},
	}
}

func TestCalculate_RoRoPassengerMultiFuel(t *testing.T) {
	result, err := Calculate(ShipTypeRoRoPassengerShip, 25000, 0, 150000, roroPassengerFuel(), 2019)
	require.NoError(t, err)
	require.Len(t, result.Results, YearCount)

	measured := 0
	for i, yr := range result.Results {
		assert.Equal(t, FirstYear+i, yr.Year)
		if yr.IsMeasuredYear {
			measured++
			assert.Equal(t, 2019, yr.Year)
		}
		assert.Equal(t, yr.IsMeasuredYear, !yr.IsEstimatedYear())

		first := result.Results[0]
		assert.Equal(t, first.CO2eEmissions, yr.CO2eEmissions)
		assert.Equal(t, first.ShipCapacity, yr.ShipCapacity)
		assert.Equal(t, first.TransportWork, yr.TransportWork)
		assert.Equal(t, first.AttainedCII, yr.AttainedCII)

		assert.InDelta(t, yr.AttainedCII/yr.RequiredCII, yr.Ratio, 1e-12)
		assert.Equal(t, CapacityUnitGT, yr.Boundaries.CapacityUnit)
		assert.Equal(t, yr.Year, yr.Boundaries.Year)
	}
	assert.Equal(t, 1, measured)

	first := result.Results[0]
	assert.InDelta(t, 7.1585e10, first.CO2eEmissions, 1)
	assert.InDelta(t, 25000, first.ShipCapacity, 1e-9)
	assert.InDelta(t, 3.75e9, first.TransportWork, 1e-3)
	assert.InDelta(t, 19.089333, first.AttainedCII, 1e-6)
	assert.InDelta(t, 19.184191, first.RequiredCII, 1e-6)

	wantRatings := []Rating{
		RatingC, RatingC, RatingC, RatingC, RatingC, RatingC,
		RatingC, RatingC, RatingD, RatingD, RatingD, RatingD,
	}
	for i, yr := range result.Results {
		assert.Equal(t, wantRatings[i], yr.Rating, "year %d", yr.Year)
	}

	m, ok := result.MeasuredYear()
	require.True(t, ok)
	assert.Equal(t, 2019, m.Year)
}

func TestCalculate_GasCarrierLowerTier(t *testing.T) {
	result, err := CalculateSingleFuel(ShipTypeGasCarrier, 0, 60000, 150000, FuelTypeLNG, 10_000e6, 2019)
	require.NoError(t, err)
	require.Len(t, result.Results, YearCount)

	for _, yr := range result.Results {
		assert.InDelta(t, 60000, yr.ShipCapacity, 1e-9)
		assert.Equal(t, WeightClassification{Lower: 0, Upper: GasCarrierBoundaryTier}, yr.Boundaries.WeightClassification)
		assert.InDelta(t, 0.85*yr.RequiredCII, yr.Boundaries.Value(BoundarySuperior), 1e-12)
		assert.InDelta(t, 0.95*yr.RequiredCII, yr.Boundaries.Value(BoundaryLower), 1e-12)
		assert.InDelta(t, 1.06*yr.RequiredCII, yr.Boundaries.Value(BoundaryUpper), 1e-12)
		assert.InDelta(t, 1.25*yr.RequiredCII, yr.Boundaries.Value(BoundaryInferior), 1e-12)
		assert.Equal(t, RatingA, yr.Rating)
	}

	y2019, ok := result.Year(2019)
	require.True(t, ok)
	assert.True(t, y2019.IsMeasuredYear)
	assert.InDelta(t, 3.0555556, y2019.AttainedCII, 1e-6)
	assert.InDelta(t, 7.169036, y2019.RequiredCII, 1e-6)
}

func TestCalculate_SingleFuelMatchesMultiFuel(t *testing.T) {
	single, err := CalculateSingleFuel(ShipTypeRoRoPassengerShip, 25000, 0, 150000, FuelTypeDieselOrGasOil, 1.9e10, 2019)
	require.NoError(t, err)

	multi, err := Calculate(ShipTypeRoRoPassengerShip, 25000, 0, 150000,
		[]FuelConsumption{{FuelType: FuelTypeDieselOrGasOil, Grams: 1.9e10}}, 2019)
	require.NoError(t, err)

	singleJSON, err := json.Marshal(single)
	require.NoError(t, err)
	multiJSON, err := json.Marshal(multi)
	require.NoError(t, err)
	assert.JSONEq(t, string(singleJSON), string(multiJSON))
}

func TestCalculateForShip(t *testing.T) {
	ship := Ship{Type: ShipTypeRoRoPassengerShip, GrossTonnage: 25000}
	fromShip, err := CalculateForShip(ship, 150000, roroPassengerFuel(), 2023)
	require.NoError(t, err)

	fromScalars, err := Calculate(ShipTypeRoRoPassengerShip, 25000, 0, 150000, roroPassengerFuel(), 2023)
	require.NoError(t, err)

	assert.Equal(t, fromScalars, fromShip)
}

func TestCalculate_TargetYearOutsideWindow(t *testing.T) {
	for _, year := range []int{2015, 2031} {
		result, err := Calculate(ShipTypeTanker, 0, 50000, 100000,
			[]FuelConsumption{{FuelType: FuelTypeHeavyFuelOil, Grams: 5e9}}, year)
		require.NoError(t, err)
		require.Len(t, result.Results, YearCount)

		_, ok := result.MeasuredYear()
		assert.False(t, ok, "year %d", year)
	}
}

func TestCalculate_Errors(t *testing.T) {
	diesel := []FuelConsumption{{FuelType: FuelTypeDieselOrGasOil, Grams: 1e9}}

	tests := []struct {
		name     string
		shipType ShipType
		gt, dwt  float64
		distance float64
		fuel     []FuelConsumption
		wantErr  error
	}{
		{name: "no fuel", shipType: ShipTypeTanker, dwt: 50000, distance: 1000, fuel: nil, wantErr: ErrInvalidInput},
		{name: "zero distance", shipType: ShipTypeTanker, dwt: 50000, distance: 0, fuel: diesel, wantErr: ErrInvalidInput},
		{name: "negative distance", shipType: ShipTypeTanker, dwt: 50000, distance: -10, fuel: diesel, wantErr: ErrInvalidInput},
		{
			name: "negative fuel", shipType: ShipTypeTanker, dwt: 50000, distance: 1000,
			fuel: []FuelConsumption{{FuelType: FuelTypeLNG, Grams: -1}}, wantErr: ErrInvalidInput,
		},
		{
			name: "zero total fuel", shipType: ShipTypeTanker, dwt: 50000, distance: 1000,
			fuel: []FuelConsumption{{FuelType: FuelTypeLNG, Grams: 0}}, wantErr: ErrInvalidInput,
		},
		{
			name: "unsupported fuel", shipType: ShipTypeTanker, dwt: 50000, distance: 1000,
			fuel: []FuelConsumption{{FuelType: FuelTypeOther, Grams: 1e9}}, wantErr: ErrUnsupportedFuelType,
		},
		{name: "unknown ship", shipType: ShipTypeUnknown, dwt: 50000, gt: 50000, distance: 1000, fuel: diesel, wantErr: ErrUnsupportedShipType},
		{name: "missing dwt", shipType: ShipTypeTanker, gt: 50000, distance: 1000, fuel: diesel, wantErr: ErrInvalidTonnage},
		{name: "missing gt", shipType: ShipTypeCruisePassengerShip, dwt: 50000, distance: 1000, fuel: diesel, wantErr: ErrInvalidTonnage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(tt.shipType, tt.gt, tt.dwt, tt.distance, tt.fuel, 2023)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, result.Results)
		})
	}
}

func TestCalculate_JSONShape(t *testing.T) {
	result, err := Calculate(ShipTypeBulkCarrier, 0, 80000, 100000,
		[]FuelConsumption{{FuelType: FuelTypeHeavyFuelOil, Grams: 1.2e10}}, 2023)
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded struct {
		Results []map[string]json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, YearCount)

	entry := decoded.Results[4]
	for _, key := range []string{
		"is_measured_year", "year", "required_cii", "attained_cii", "ratio", "rating",
		"vector_boundaries_for_year", "calculated_co2e_emissions",
		"calculated_ship_capacity", "calculated_transport_work",
	} {
		assert.Contains(t, entry, key)
	}
	assert.JSONEq(t, `true`, string(entry["is_measured_year"]))

	var boundaries struct {
		ShipType string             `json:"ship_type"`
		Unit     string             `json:"capacity_unit"`
		Values   map[string]float64 `json:"boundary_dd_vectors"`
	}
	require.NoError(t, json.Unmarshal(entry["vector_boundaries_for_year"], &boundaries))
	assert.Equal(t, "bulk_carrier", boundaries.ShipType)
	assert.Equal(t, "dwt", boundaries.Unit)
	assert.Len(t, boundaries.Values, 4)
	assert.Contains(t, boundaries.Values, "superior")
}
