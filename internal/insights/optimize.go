package insights

import (
	"sort"
	"time"

	"github.com/bizpulse/backend/internal/model"
	"github.com/bizpulse/backend/internal/stats"
)

// Categories need a minimum number of transactions before a savings
// estimate or trend is meaningful.
const (
	minSavingsTransactions = 3
	minTrendMonths         = 2
	trendShiftThreshold    = 0.10
)

// FindCostSavings applies the per-category savings-rate table to each
// category with enough transactions and returns optimizations whose
// estimated savings strictly exceed the configured floor.
func (a *Analyzer) FindCostSavings(expenses []model.Transaction) []model.CostOptimization {
	byCategory := groupByLabel(expenses)

	var optimizations []model.CostOptimization
	for category, group := range byCategory {
		if len(group) < minSavingsTransactions {
			continue
		}

		var total float64
		for _, e := range group {
			total += e.Amount
		}

		rate, ok := a.cfg.SavingsRates[category]
		if !ok {
			rate = a.cfg.DefaultSavingsRate
		}
		savings := total * rate
		if savings <= a.cfg.MinSavings {
			continue
		}

		recommendation, ok := savingsRecommendations[category]
		if !ok {
			recommendation = genericRecommendation
		}

		optimizations = append(optimizations, model.CostOptimization{
			Category:          category,
			CurrentSpend:      total,
			RecommendedSpend:  total - savings,
			PotentialSavings:  savings,
			Recommendation:    recommendation,
			VendorSuggestions: vendorSuggestions[category],
		})
	}

	sort.Slice(optimizations, func(i, j int) bool {
		if optimizations[i].PotentialSavings != optimizations[j].PotentialSavings {
			return optimizations[i].PotentialSavings > optimizations[j].PotentialSavings
		}
		return optimizations[i].Category < optimizations[j].Category
	})
	return optimizations
}

// AnalyzeTrends summarizes each category's monthly spending as increasing,
// decreasing or stable by comparing the first and second halves of its
// monthly series. The seasonal multipliers are a fixed 1.0 placeholder per
// month present; this is a known limitation carried over from the original
// heuristics, not a real seasonal decomposition.
func (a *Analyzer) AnalyzeTrends(expenses []model.Transaction) []model.SpendingPattern {
	byCategory := groupByLabel(expenses)

	var patterns []model.SpendingPattern
	for category, group := range byCategory {
		monthly := make(map[string]float64)
		monthsOfYear := make(map[time.Month]bool)
		for _, e := range group {
			monthly[e.Date.Format("2006-01")] += e.Amount
			monthsOfYear[e.Date.Month()] = true
		}
		if len(monthly) < minTrendMonths {
			continue
		}

		keys := make([]string, 0, len(monthly))
		for k := range monthly {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		series := make([]float64, len(keys))
		for i, k := range keys {
			series[i] = monthly[k]
		}

		mid := len(series) / 2
		firstAvg := stats.Mean(series[:mid])
		secondAvg := stats.Mean(series[mid:])

		trend := model.TrendStable
		switch {
		case secondAvg > firstAvg*(1+trendShiftThreshold):
			trend = model.TrendIncreasing
		case secondAvg < firstAvg*(1-trendShiftThreshold):
			trend = model.TrendDecreasing
		}

		factors := make([]model.SeasonalFactor, 0, len(monthsOfYear))
		for m := range monthsOfYear {
			factors = append(factors, model.SeasonalFactor{Month: m, Multiplier: 1.0})
		}
		sort.Slice(factors, func(i, j int) bool { return factors[i].Month < factors[j].Month })

		patterns = append(patterns, model.SpendingPattern{
			Category:        category,
			AverageMonthly:  stats.Mean(series),
			Trend:           trend,
			Variance:        stats.Variance(series),
			SeasonalFactors: factors,
		})
	}

	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Category < patterns[j].Category })
	return patterns
}
