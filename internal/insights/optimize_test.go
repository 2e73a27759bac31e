package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/backend/internal/model"
)

func TestFindCostSavings(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())
	day := date(2024, time.February, 1)

	t.Run("marketing spend over the floor", func(t *testing.T) {
		expenses := []model.Transaction{
			expense("m1", "Marketing", 400, day),
			expense("m2", "Marketing", 300, day.AddDate(0, 0, 10)),
			expense("m3", "Marketing", 300, day.AddDate(0, 0, 20)),
		}

		opts := analyzer.FindCostSavings(expenses)
		require.Len(t, opts, 1)

		opt := opts[0]
		assert.Equal(t, "Marketing", opt.Category)
		assert.InDelta(t, 1000.0, opt.CurrentSpend, 1e-9)
		assert.InDelta(t, 850.0, opt.RecommendedSpend, 1e-9)
		assert.InDelta(t, 150.0, opt.PotentialSavings, 1e-9) // 15% rate
		assert.NotEmpty(t, opt.Recommendation)
	})

	t.Run("savings at or below the floor are dropped", func(t *testing.T) {
		// Equipment 500 * 0.10 = 50, not strictly above the 50 threshold.
		expenses := []model.Transaction{
			expense("e1", "Equipment", 200, day),
			expense("e2", "Equipment", 150, day.AddDate(0, 0, 3)),
			expense("e3", "Equipment", 150, day.AddDate(0, 0, 6)),
		}
		assert.Empty(t, analyzer.FindCostSavings(expenses))
	})

	t.Run("fewer than three transactions per category", func(t *testing.T) {
		expenses := []model.Transaction{
			expense("m1", "Marketing", 5000, day),
			expense("m2", "Marketing", 5000, day.AddDate(0, 0, 10)),
		}
		assert.Empty(t, analyzer.FindCostSavings(expenses))
	})

	t.Run("unlisted category uses the default rate", func(t *testing.T) {
		expenses := []model.Transaction{
			expense("t1", "Travel", 400, day),
			expense("t2", "Travel", 400, day.AddDate(0, 0, 7)),
			expense("t3", "Travel", 200, day.AddDate(0, 0, 14)),
		}

		opts := analyzer.FindCostSavings(expenses)
		require.Len(t, opts, 1)
		assert.InDelta(t, 80.0, opts[0].PotentialSavings, 1e-9) // 1000 * 0.08
	})

	t.Run("sorted by savings descending", func(t *testing.T) {
		expenses := []model.Transaction{
			expense("t1", "Transportation", 500, day),
			expense("t2", "Transportation", 500, day.AddDate(0, 0, 5)),
			expense("t3", "Transportation", 500, day.AddDate(0, 0, 10)),
			expense("m1", "Marketing", 2000, day),
			expense("m2", "Marketing", 2000, day.AddDate(0, 0, 5)),
			expense("m3", "Marketing", 2000, day.AddDate(0, 0, 10)),
		}

		opts := analyzer.FindCostSavings(expenses)
		require.Len(t, opts, 2)
		assert.Equal(t, "Marketing", opts[0].Category)
		assert.Equal(t, "Transportation", opts[1].Category)
	})

	t.Run("custom rates and floor", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SavingsRates = map[string]float64{"Marketing": 0.50}
		cfg.MinSavings = 10
		custom := NewAnalyzer(cfg)

		expenses := []model.Transaction{
			expense("m1", "Marketing", 20, day),
			expense("m2", "Marketing", 20, day.AddDate(0, 0, 1)),
			expense("m3", "Marketing", 20, day.AddDate(0, 0, 2)),
		}

		opts := custom.FindCostSavings(expenses)
		require.Len(t, opts, 1)
		assert.InDelta(t, 30.0, opts[0].PotentialSavings, 1e-9)
	})
}

func TestAnalyzeTrends(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig())

	monthly := func(category string, amounts ...float64) []model.Transaction {
		var txns []model.Transaction
		for i, a := range amounts {
			txns = append(txns, expense("", category, a, date(2024, time.January, 5).AddDate(0, i, 0)))
		}
		return txns
	}

	t.Run("increasing spend", func(t *testing.T) {
		patterns := analyzer.AnalyzeTrends(monthly("Supplies", 100, 100, 200, 200))
		require.Len(t, patterns, 1)

		p := patterns[0]
		assert.Equal(t, "Supplies", p.Category)
		assert.Equal(t, model.TrendIncreasing, p.Trend)
		assert.InDelta(t, 150.0, p.AverageMonthly, 1e-9)
	})

	t.Run("decreasing spend", func(t *testing.T) {
		patterns := analyzer.AnalyzeTrends(monthly("Supplies", 300, 300, 100, 100))
		require.Len(t, patterns, 1)
		assert.Equal(t, model.TrendDecreasing, patterns[0].Trend)
	})

	t.Run("stable spend within the ten percent band", func(t *testing.T) {
		patterns := analyzer.AnalyzeTrends(monthly("Supplies", 100, 100, 105, 105))
		require.Len(t, patterns, 1)
		assert.Equal(t, model.TrendStable, patterns[0].Trend)
	})

	t.Run("single month is not enough history", func(t *testing.T) {
		txns := []model.Transaction{
			expense("a", "Supplies", 100, date(2024, time.January, 3)),
			expense("b", "Supplies", 100, date(2024, time.January, 20)),
		}
		assert.Empty(t, analyzer.AnalyzeTrends(txns))
	})

	t.Run("seasonal factors are a flat placeholder", func(t *testing.T) {
		patterns := analyzer.AnalyzeTrends(monthly("Supplies", 100, 400, 100, 400))
		require.Len(t, patterns, 1)

		factors := patterns[0].SeasonalFactors
		require.Len(t, factors, 4)
		for _, f := range factors {
			assert.Equal(t, 1.0, f.Multiplier)
		}
	})

	t.Run("categories come back sorted", func(t *testing.T) {
		txns := append(monthly("Zebra", 100, 100), monthly("Alpha", 100, 100)...)
		patterns := analyzer.AnalyzeTrends(txns)
		require.Len(t, patterns, 2)
		assert.Equal(t, "Alpha", patterns[0].Category)
		assert.Equal(t, "Zebra", patterns[1].Category)
	})
}
