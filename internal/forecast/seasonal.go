package forecast

import (
	"fmt"
	"sort"
	"time"

	"github.com/bizpulse/backend/internal/model"
	"github.com/bizpulse/backend/internal/stats"
)

const (
	trendMinTransactions = 10
	trendMinWeeks        = 4
	trendSlopeThreshold  = 50.0
)

// CalculateSeasonalFactors groups transactions by calendar month (month of
// year, across years), averages each month's amounts and divides by the
// overall average of the months present. Months with no data are omitted.
func CalculateSeasonalFactors(txns []model.Transaction) []model.SeasonalFactor {
	totals := make(map[time.Month]float64)
	counts := make(map[time.Month]int)
	for _, t := range txns {
		m := t.Date.Month()
		totals[m] += t.Amount
		counts[m]++
	}
	if len(totals) == 0 {
		return nil
	}

	averages := make(map[time.Month]float64, len(totals))
	var overall float64
	for m, total := range totals {
		avg := total / float64(counts[m])
		averages[m] = avg
		overall += avg
	}
	overall /= float64(len(averages))
	if overall == 0 {
		return nil
	}

	factors := make([]model.SeasonalFactor, 0, len(averages))
	for m, avg := range averages {
		factors = append(factors, model.SeasonalFactor{Month: m, Multiplier: avg / overall})
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i].Month < factors[j].Month })
	return factors
}

// ApplyTrendAnalysis fits a least-squares line through weekly spending sums
// and classifies the slope. It needs at least 10 transactions across 4
// distinct ISO weeks; with less data it reports a stable trend.
func ApplyTrendAnalysis(txns []model.Transaction) model.TrendResult {
	stable := model.TrendResult{Slope: 0, Direction: "stable"}
	if len(txns) < trendMinTransactions {
		return stable
	}

	weekly := make(map[string]float64)
	for _, t := range txns {
		year, week := t.Date.ISOWeek()
		weekly[fmt.Sprintf("%04d-%02d", year, week)] += t.Amount
	}
	if len(weekly) < trendMinWeeks {
		return stable
	}

	keys := make([]string, 0, len(weekly))
	for k := range weekly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sums := make([]float64, len(keys))
	for i, k := range keys {
		sums[i] = weekly[k]
	}

	slope, _ := stats.LinearRegression(sums)
	direction := "stable"
	switch {
	case slope > trendSlopeThreshold:
		direction = "up"
	case slope < -trendSlopeThreshold:
		direction = "down"
	}
	return model.TrendResult{Slope: slope, Direction: direction}
}
