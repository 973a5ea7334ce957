package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMean(t *testing.T) {
	m, err := CalculateMean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = CalculateMean(nil)
	assert.Error(t, err)
}

func TestCalculateStdDev(t *testing.T) {
	sd, err := CalculateStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sd, 1e-12)

	sd, err = CalculateStdDev([]float64{-3})
	require.NoError(t, err)
	assert.Zero(t, sd)

	_, err = CalculateStdDev(nil)
	assert.Error(t, err)
}

func TestCalculateRange(t *testing.T) {
	high, low, err := CalculateRange([]float64{-5, 12.5, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, 12.5, high)
	assert.Equal(t, -5.0, low)

	_, _, err = CalculateRange([]float64{})
	assert.Error(t, err)
}

func TestCalculateWinRate(t *testing.T) {
	tests := []struct {
		won, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{5, 5, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateWinRate(tt.won, tt.total), "%d/%d", tt.won, tt.total)
	}
}
