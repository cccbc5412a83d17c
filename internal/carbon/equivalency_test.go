package carbon

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGrams(t *testing.T) {
	// 71,585 t of CO2, a mid-size ro-ro passenger ship's year.
	out, err := FromGrams(7.1585e10)
	require.NoError(t, err)

	assert.False(t, out.IsEmpty)
	assert.InDelta(t, 7.1585e10, out.CO2Grams, 1)
	require.Len(t, out.Results, 4)

	want := []struct {
		typ       EquivalencyType
		value     float64
		formatted string
	}{
		{EquivalencyMilesDriven, 182150127.226, "~182.2 million"},
		{EquivalencyTreeSeedlings, 1193083.333, "~1.2 million"},
		{EquivalencyHomesPowered, 9027.1122, "~9,027"},
		{EquivalencySmartphonesCharged, 5772983870.97, "~5.8 billion"},
	}
	for i, w := range want {
		assert.Equal(t, w.typ, out.Results[i].Type)
		assert.InEpsilon(t, w.value, out.Results[i].Value, 1e-6)
		assert.Equal(t, w.formatted, out.Results[i].FormattedValue)
		assert.NotEmpty(t, out.Results[i].Label)
	}
	assert.Equal(t, "Equivalent to driving ~182.2 million miles or the energy use of ~9,027 homes for a year",
		out.DisplayText)
}

func TestFromGrams_BelowThreshold(t *testing.T) {
	out, err := FromGrams(500)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty)
	assert.Empty(t, out.Results)
	assert.InDelta(t, 500, out.CO2Grams, 0)
}

func TestFromGrams_Errors(t *testing.T) {
	_, err := FromGrams(-1)
	assert.ErrorIs(t, err, ErrNegativeValue)

	_, err = FromGrams(math.NaN())
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestEquivalencies_JSON(t *testing.T) {
	out, err := FromGrams(1e6)
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"miles_driven"`)
	assert.Contains(t, string(data), `"co2_grams":1000000`)
}

func TestFormatEquivalency(t *testing.T) {
	assert.Equal(t, "~999,999", formatEquivalency(999_999))
	assert.Equal(t, "~1.0 million", formatEquivalency(1_000_000))
	assert.Equal(t, "~2.5 billion", formatEquivalency(2.5e9))
	assert.Equal(t, "~0", formatEquivalency(0.2))
}
