package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{150000, "150,000"},
		{-25000, "-25,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.input))
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		precision int
		want      string
	}{
		{"small", 19.0893333, 4, "19.0893"},
		{"thousands", 19089.3333, 2, "19,089.33"},
		{"no decimals", 25000, 0, "25,000"},
		{"rounds up", 0.99996, 4, "1.0000"},
		{"negative", -1234.5, 1, "-1,234.5"},
		{"beyond int64", 1e21, 0, "1,000,000,000,000,000,000,000"},
		{"negative precision", 12.7, -1, "13"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.input, tt.precision))
		})
	}

	assert.Equal(t, "+Inf", FormatFloat(math.Inf(1), 2))
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "999,999", FormatLarge(999_999))
	assert.Equal(t, "~3.8 million", FormatLarge(3_750_000))
	assert.Equal(t, "~71.6 billion", FormatLarge(7.1585e10))
}
