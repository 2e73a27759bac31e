package forecast

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/backend/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func revenueTxn(id string, amount float64, d time.Time) model.Transaction {
	return model.Transaction{ID: id, Kind: model.KindRevenue, Amount: amount, Date: d, Label: "Sales"}
}

func expenseTxn(id string, amount float64, d time.Time) model.Transaction {
	return model.Transaction{ID: id, Kind: model.KindExpense, Amount: amount, Date: d, Label: "Supplies"}
}

func TestGenerateForecastZeroData(t *testing.T) {
	today := date(2024, time.June, 1)
	fc := GenerateForecast(HistoricalData{}, nil, 30, 1000, today)

	require.Len(t, fc.DailyProjections, 30)
	assert.Equal(t, 30, fc.ForecastPeriod)
	assert.Equal(t, today, fc.StartDate)
	assert.Equal(t, today.AddDate(0, 0, 30), fc.EndDate)
	assert.Equal(t, 1000.0, fc.CurrentBalance)
	assert.Equal(t, 1000.0, fc.ProjectedBalance)

	for i, day := range fc.DailyProjections {
		assert.Equal(t, 0.0, day.ProjectedRevenue, "day %d revenue", i)
		assert.Equal(t, 0.0, day.ProjectedExpenses, "day %d expenses", i)
		assert.Equal(t, 1000.0, day.ProjectedBalance, "day %d balance", i)
	}
}

func TestGenerateForecastBalanceInvariant(t *testing.T) {
	today := date(2024, time.March, 1)
	hist := HistoricalData{
		Revenues: []model.Transaction{
			revenueTxn("r1", 900, date(2024, time.February, 1)),
			revenueTxn("r2", 600, date(2024, time.February, 29)),
		},
		Expenses: []model.Transaction{
			expenseTxn("e1", 280, date(2024, time.February, 10)),
			expenseTxn("e2", 140, date(2024, time.February, 20)),
		},
	}
	recurring := []model.RecurringTransaction{
		{Type: model.KindExpense, Name: "Rent", Amount: 1200, Frequency: model.FrequencyMonthly, StartDate: date(2024, time.January, 5), Active: true},
		{Type: model.KindRevenue, Name: "Retainer", Amount: 500, Frequency: model.FrequencyWeekly, StartDate: date(2024, time.February, 2), Active: true},
	}

	fc := GenerateForecast(hist, recurring, 60, 2500, today)
	require.Len(t, fc.DailyProjections, 60)

	prev := fc.CurrentBalance
	for i, day := range fc.DailyProjections {
		expected := prev + day.ProjectedRevenue - day.ProjectedExpenses
		assert.InDelta(t, expected, day.ProjectedBalance, 1e-9, "day %d", i)
		prev = day.ProjectedBalance
	}
	assert.InDelta(t, prev, fc.ProjectedBalance, 1e-9)
}

func TestGenerateForecastConfidenceBounds(t *testing.T) {
	today := date(2024, time.July, 15)
	var revs []model.Transaction
	for i := 0; i < 5; i++ {
		revs = append(revs, revenueTxn("r", 100, today.AddDate(0, 0, -i-1)))
	}

	for _, period := range []int{1, 30, 90, 365} {
		fc := GenerateForecast(HistoricalData{Revenues: revs}, nil, period, 0, today)
		assert.Len(t, fc.DailyProjections, period)
		assert.GreaterOrEqual(t, fc.Confidence, 0)
		assert.LessOrEqual(t, fc.Confidence, 100)
		for _, day := range fc.DailyProjections {
			assert.GreaterOrEqual(t, day.Confidence, 0)
			assert.LessOrEqual(t, day.Confidence, 100)
		}
	}
}

func TestGenerateForecastIdempotent(t *testing.T) {
	today := date(2024, time.May, 10)
	hist := HistoricalData{
		Revenues: []model.Transaction{revenueTxn("r1", 1000, date(2024, time.April, 1))},
		Expenses: []model.Transaction{expenseTxn("e1", 400, date(2024, time.April, 20))},
	}
	recurring := []model.RecurringTransaction{
		{Type: model.KindExpense, Name: "Hosting", Amount: 30, Frequency: model.FrequencyMonthly, StartDate: date(2024, time.January, 3), Active: true},
	}

	a := GenerateForecast(hist, recurring, 45, 800, today)
	b := GenerateForecast(hist, recurring, 45, 800, today)
	assert.True(t, reflect.DeepEqual(a, b), "identical inputs must produce identical forecasts")
}

func TestGenerateForecastHistoricalAverages(t *testing.T) {
	// 10 days of span (Feb 1 to Feb 11), $1000 revenue, $500 expense.
	hist := HistoricalData{
		Revenues: []model.Transaction{
			revenueTxn("r1", 400, date(2024, time.February, 1)),
			revenueTxn("r2", 600, date(2024, time.February, 11)),
		},
		Expenses: []model.Transaction{
			expenseTxn("e1", 500, date(2024, time.February, 6)),
		},
	}
	fc := GenerateForecast(hist, nil, 10, 0, date(2024, time.March, 1))
	require.NotEmpty(t, fc.DailyProjections)
	first := fc.DailyProjections[0]
	assert.InDelta(t, 100.0, first.ProjectedRevenue, 1e-9)
	assert.InDelta(t, 50.0, first.ProjectedExpenses, 1e-9)
	assert.InDelta(t, 100.0, first.Breakdown.HistoricalRevenue, 1e-9)
	assert.InDelta(t, 50.0, first.Breakdown.HistoricalExpenses, 1e-9)
	assert.Equal(t, 0.0, first.Breakdown.RecurringRevenue)
}

func TestGenerateForecastOverallConfidenceLadder(t *testing.T) {
	today := date(2024, time.June, 1)
	manyTxns := func(n int) []model.Transaction {
		txns := make([]model.Transaction, n)
		for i := range txns {
			txns[i] = revenueTxn("r", 10, today.AddDate(0, 0, -1-i%90))
		}
		return txns
	}
	activeRecurring := func(n int) []model.RecurringTransaction {
		rts := make([]model.RecurringTransaction, n)
		for i := range rts {
			rts[i] = model.RecurringTransaction{
				Type: model.KindExpense, Name: "Sub", Amount: 10,
				Frequency: model.FrequencyMonthly, StartDate: date(2024, time.January, 1), Active: true,
			}
		}
		return rts
	}

	tests := []struct {
		name       string
		historical int
		recurring  int
		period     int
		want       int
	}{
		{"bare minimum", 0, 0, 365, 50},
		{"short horizon only", 0, 0, 30, 60},
		{"medium horizon only", 0, 0, 90, 55},
		{"rich history short horizon", 101, 0, 30, 80},
		{"moderate history", 51, 0, 30, 75},
		{"light history", 21, 0, 30, 70},
		{"everything maxed is capped", 150, 6, 30, 95},
		{"some recurring", 0, 3, 30, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := GenerateForecast(HistoricalData{Revenues: manyTxns(tt.historical)}, activeRecurring(tt.recurring), tt.period, 0, today)
			assert.Equal(t, tt.want, fc.Confidence)
		})
	}
}

func TestGenerateForecastAssumptions(t *testing.T) {
	today := date(2024, time.June, 1)
	recurring := []model.RecurringTransaction{
		{Type: model.KindExpense, Name: "Rent", Amount: 1000, Frequency: model.FrequencyMonthly, StartDate: date(2024, time.January, 1), Active: true},
		{Type: model.KindRevenue, Name: "Retainer", Amount: 400, Frequency: model.FrequencyMonthly, StartDate: date(2024, time.January, 1), Active: true},
		{Type: model.KindExpense, Name: "Old", Amount: 99, Frequency: model.FrequencyMonthly, StartDate: date(2023, time.January, 1), Active: false},
	}
	fc := GenerateForecast(HistoricalData{}, recurring, 30, 0, today)

	require.Len(t, fc.Assumptions, 2)
	assert.Contains(t, fc.Assumptions[0].Description, "2 active recurring")
	assert.InDelta(t, 1400.0, fc.Assumptions[0].Impact, 1e-9)
	assert.Contains(t, fc.Assumptions[1].Description, "0 historical records")

	// With no recurring at all, only the historical assumption remains.
	fc = GenerateForecast(HistoricalData{}, nil, 30, 0, today)
	require.Len(t, fc.Assumptions, 1)
}

func TestOccursOn(t *testing.T) {
	base := model.RecurringTransaction{Type: model.KindExpense, Amount: 10, Active: true}

	t.Run("monthly matches anchor day exactly", func(t *testing.T) {
		rt := base
		rt.Frequency = model.FrequencyMonthly
		rt.StartDate = date(2024, time.January, 15)

		assert.True(t, occursOn(rt, date(2024, time.February, 15)))
		assert.True(t, occursOn(rt, date(2024, time.March, 15)))
		assert.False(t, occursOn(rt, date(2024, time.February, 14)))
		assert.False(t, occursOn(rt, date(2024, time.February, 16)))
	})

	t.Run("monthly on the 31st skips short months", func(t *testing.T) {
		rt := base
		rt.Frequency = model.FrequencyMonthly
		rt.StartDate = date(2024, time.January, 31)

		assert.True(t, occursOn(rt, date(2024, time.March, 31)))
		for d := 1; d <= 30; d++ {
			assert.False(t, occursOn(rt, date(2024, time.April, d)), "April %d", d)
		}
	})

	t.Run("weekly every seventh day", func(t *testing.T) {
		rt := base
		rt.Frequency = model.FrequencyWeekly
		rt.StartDate = date(2024, time.June, 3)

		assert.True(t, occursOn(rt, date(2024, time.June, 3)))
		assert.True(t, occursOn(rt, date(2024, time.June, 10)))
		assert.False(t, occursOn(rt, date(2024, time.June, 9)))
	})

	t.Run("bi-weekly every fourteenth day", func(t *testing.T) {
		rt := base
		rt.Frequency = model.FrequencyBiWeekly
		rt.StartDate = date(2024, time.June, 3)

		assert.True(t, occursOn(rt, date(2024, time.June, 17)))
		assert.False(t, occursOn(rt, date(2024, time.June, 10)))
	})

	t.Run("quarterly matches day and three-month multiples", func(t *testing.T) {
		rt := base
		rt.Frequency = model.FrequencyQuarterly
		rt.StartDate = date(2024, time.January, 10)

		assert.True(t, occursOn(rt, date(2024, time.April, 10)))
		assert.True(t, occursOn(rt, date(2024, time.July, 10)))
		assert.False(t, occursOn(rt, date(2024, time.May, 10)))
	})

	t.Run("annually matches month and day", func(t *testing.T) {
		rt := base
		rt.Frequency = model.FrequencyAnnually
		rt.StartDate = date(2023, time.September, 5)

		assert.True(t, occursOn(rt, date(2024, time.September, 5)))
		assert.False(t, occursOn(rt, date(2024, time.October, 5)))
	})

	t.Run("date bounds", func(t *testing.T) {
		end := date(2024, time.June, 30)
		rt := base
		rt.Frequency = model.FrequencyDaily
		rt.StartDate = date(2024, time.June, 1)
		rt.EndDate = &end

		assert.False(t, occursOn(rt, date(2024, time.May, 31)))
		assert.True(t, occursOn(rt, date(2024, time.June, 1)))
		assert.True(t, occursOn(rt, end))
		assert.False(t, occursOn(rt, date(2024, time.July, 1)))
	})
}

func TestNextOccurrence(t *testing.T) {
	rt := model.RecurringTransaction{
		Type: model.KindExpense, Amount: 50, Active: true,
		Frequency: model.FrequencyMonthly, StartDate: date(2024, time.January, 15),
	}
	next := NextOccurrence(rt, date(2024, time.February, 15))
	assert.Equal(t, date(2024, time.March, 15), next)

	end := date(2024, time.March, 1)
	rt.EndDate = &end
	assert.True(t, NextOccurrence(rt, date(2024, time.March, 2)).IsZero())
}
