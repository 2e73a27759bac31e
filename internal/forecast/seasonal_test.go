package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/backend/internal/model"
)

func TestCalculateSeasonalFactors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, CalculateSeasonalFactors(nil))
	})

	t.Run("multipliers relative to overall average", func(t *testing.T) {
		txns := []model.Transaction{
			{Amount: 100, Date: date(2024, time.January, 10)},
			{Amount: 300, Date: date(2024, time.February, 10)},
		}
		factors := CalculateSeasonalFactors(txns)
		require.Len(t, factors, 2)

		// January avg 100, February avg 300, overall 200.
		assert.Equal(t, time.January, factors[0].Month)
		assert.InDelta(t, 0.5, factors[0].Multiplier, 1e-9)
		assert.Equal(t, time.February, factors[1].Month)
		assert.InDelta(t, 1.5, factors[1].Multiplier, 1e-9)
	})

	t.Run("same month across years is averaged together", func(t *testing.T) {
		txns := []model.Transaction{
			{Amount: 100, Date: date(2023, time.March, 1)},
			{Amount: 200, Date: date(2024, time.March, 1)},
		}
		factors := CalculateSeasonalFactors(txns)
		require.Len(t, factors, 1)
		assert.Equal(t, time.March, factors[0].Month)
		assert.InDelta(t, 1.0, factors[0].Multiplier, 1e-9)
	})
}

func TestApplyTrendAnalysis(t *testing.T) {
	t.Run("too few transactions is stable", func(t *testing.T) {
		var txns []model.Transaction
		for i := 0; i < 9; i++ {
			txns = append(txns, model.Transaction{Amount: 100, Date: date(2024, time.January, 1).AddDate(0, 0, i*7)})
		}
		result := ApplyTrendAnalysis(txns)
		assert.Equal(t, model.TrendResult{Slope: 0, Direction: "stable"}, result)
	})

	t.Run("too few distinct weeks is stable", func(t *testing.T) {
		var txns []model.Transaction
		for i := 0; i < 12; i++ {
			txns = append(txns, model.Transaction{Amount: 100, Date: date(2024, time.January, 1).AddDate(0, 0, i%3*7)})
		}
		result := ApplyTrendAnalysis(txns)
		assert.Equal(t, "stable", result.Direction)
		assert.Equal(t, 0.0, result.Slope)
	})

	t.Run("steeply rising weekly sums trend up", func(t *testing.T) {
		var txns []model.Transaction
		for week := 0; week < 6; week++ {
			for j := 0; j < 2; j++ {
				txns = append(txns, model.Transaction{
					Amount: float64(100 + week*200),
					Date:   date(2024, time.February, 5).AddDate(0, 0, week*7+j),
				})
			}
		}
		result := ApplyTrendAnalysis(txns)
		assert.Equal(t, "up", result.Direction)
		assert.Greater(t, result.Slope, 50.0)
	})

	t.Run("falling weekly sums trend down", func(t *testing.T) {
		var txns []model.Transaction
		for week := 0; week < 6; week++ {
			for j := 0; j < 2; j++ {
				txns = append(txns, model.Transaction{
					Amount: float64(1200 - week*200),
					Date:   date(2024, time.February, 5).AddDate(0, 0, week*7+j),
				})
			}
		}
		result := ApplyTrendAnalysis(txns)
		assert.Equal(t, "down", result.Direction)
		assert.Less(t, result.Slope, -50.0)
	})

	t.Run("flat spending is stable", func(t *testing.T) {
		var txns []model.Transaction
		for week := 0; week < 6; week++ {
			for j := 0; j < 2; j++ {
				txns = append(txns, model.Transaction{
					Amount: 100,
					Date:   date(2024, time.February, 5).AddDate(0, 0, week*7+j),
				})
			}
		}
		result := ApplyTrendAnalysis(txns)
		assert.Equal(t, "stable", result.Direction)
	})
}
