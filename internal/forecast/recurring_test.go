package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizpulse/backend/internal/model"
)

func monthlySeries(label string, amount float64, start time.Time, months int) []model.Transaction {
	txns := make([]model.Transaction, months)
	for i := range txns {
		txns[i] = model.Transaction{
			ID: label, Kind: model.KindExpense, Amount: amount,
			Date: start.AddDate(0, 0, 30*i), Label: label,
		}
	}
	return txns
}

func TestDetectRecurringTransactions(t *testing.T) {
	start := date(2024, time.January, 5)

	t.Run("regular 30-day spacing detected as monthly", func(t *testing.T) {
		detected := DetectRecurringTransactions(monthlySeries("Software", 49.99, start, 4))

		require.Len(t, detected, 1)
		rt := detected[0]
		assert.Equal(t, "Software", rt.Name)
		assert.Equal(t, 49.99, rt.Amount)
		assert.Equal(t, model.FrequencyMonthly, rt.Frequency)
		assert.Equal(t, start, rt.StartDate)
		assert.Equal(t, model.KindExpense, rt.Type)
		assert.True(t, rt.Active)
	})

	t.Run("weekly spacing detected as weekly", func(t *testing.T) {
		var txns []model.Transaction
		for i := 0; i < 5; i++ {
			txns = append(txns, model.Transaction{
				Kind: model.KindRevenue, Amount: 250, Label: "Retainer",
				Date: start.AddDate(0, 0, 7*i),
			})
		}
		detected := DetectRecurringTransactions(txns)
		require.Len(t, detected, 1)
		assert.Equal(t, model.FrequencyWeekly, detected[0].Frequency)
		assert.Equal(t, model.KindRevenue, detected[0].Type)
	})

	t.Run("fewer than three occurrences ignored", func(t *testing.T) {
		detected := DetectRecurringTransactions(monthlySeries("Rare", 10, start, 2))
		assert.Empty(t, detected)
	})

	t.Run("irregular spacing fails the spread check", func(t *testing.T) {
		txns := []model.Transaction{
			{Kind: model.KindExpense, Amount: 75, Label: "Adhoc", Date: start},
			{Kind: model.KindExpense, Amount: 75, Label: "Adhoc", Date: start.AddDate(0, 0, 3)},
			{Kind: model.KindExpense, Amount: 75, Label: "Adhoc", Date: start.AddDate(0, 0, 45)},
			{Kind: model.KindExpense, Amount: 75, Label: "Adhoc", Date: start.AddDate(0, 0, 46)},
		}
		assert.Empty(t, DetectRecurringTransactions(txns))
	})

	t.Run("different amounts do not group together", func(t *testing.T) {
		txns := []model.Transaction{
			{Kind: model.KindExpense, Amount: 20, Label: "Mixed", Date: start},
			{Kind: model.KindExpense, Amount: 30, Label: "Mixed", Date: start.AddDate(0, 0, 30)},
			{Kind: model.KindExpense, Amount: 40, Label: "Mixed", Date: start.AddDate(0, 0, 60)},
		}
		assert.Empty(t, DetectRecurringTransactions(txns))
	})

	t.Run("output is sorted by name", func(t *testing.T) {
		txns := append(monthlySeries("Zebra", 5, start, 3), monthlySeries("Alpha", 5, start, 3)...)
		detected := DetectRecurringTransactions(txns)
		require.Len(t, detected, 2)
		assert.Equal(t, "Alpha", detected[0].Name)
		assert.Equal(t, "Zebra", detected[1].Name)
	})
}

func TestFrequencyFromInterval(t *testing.T) {
	tests := []struct {
		days float64
		want model.Frequency
	}{
		{1, model.FrequencyDaily},
		{2, model.FrequencyDaily},
		{7, model.FrequencyWeekly},
		{14, model.FrequencyBiWeekly},
		{30, model.FrequencyMonthly},
		{91, model.FrequencyQuarterly},
		{365, model.FrequencyAnnually},
		{3.5, model.FrequencyMonthly},  // between buckets falls back to monthly
		{200, model.FrequencyMonthly},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, frequencyFromInterval(tt.days), "interval %.1f", tt.days)
	}
}
