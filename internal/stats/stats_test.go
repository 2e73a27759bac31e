package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 5.0, Mean([]float64{5}))
}

func TestVarianceAndStdDev(t *testing.T) {
	// Population variance of [2,4,4,4,5,5,7,9] is 4.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 4.0, Variance(values), 1e-9)
	assert.InDelta(t, 2.0, StdDev(values), 1e-9)

	assert.Equal(t, 0.0, Variance(nil))
	assert.Equal(t, 0.0, Variance([]float64{3, 3, 3}))
}

func TestLinearRegression(t *testing.T) {
	t.Run("perfect line", func(t *testing.T) {
		slope, r2 := LinearRegression([]float64{1, 3, 5, 7})
		assert.InDelta(t, 2.0, slope, 1e-9)
		assert.InDelta(t, 1.0, r2, 1e-9)
	})

	t.Run("flat series has slope 0 and r2 1", func(t *testing.T) {
		slope, r2 := LinearRegression([]float64{4, 4, 4})
		assert.Equal(t, 0.0, slope)
		assert.Equal(t, 1.0, r2)
	})

	t.Run("too few points", func(t *testing.T) {
		slope, r2 := LinearRegression([]float64{42})
		assert.Equal(t, 0.0, slope)
		assert.Equal(t, 0.0, r2)
	})

	t.Run("noisy series r2 below 1", func(t *testing.T) {
		slope, r2 := LinearRegression([]float64{1, 5, 2, 8, 3})
		assert.False(t, math.IsNaN(slope))
		assert.Less(t, r2, 1.0)
	})
}
