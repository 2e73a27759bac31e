// Package forecast projects daily cash flow forward from historical
// transaction data and recurring-transaction schedules. Every function is
// pure and deterministic: identical inputs (including the caller-supplied
// "today") produce identical outputs, so concurrent calls are safe and the
// caller decides whether to persist results.
package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/bizpulse/backend/internal/model"
)

// HistoricalData carries the transaction history a forecast is built from.
// The caller filters it to a single business before calling the engine.
type HistoricalData struct {
	Revenues []model.Transaction
	Expenses []model.Transaction
}

// GenerateForecast projects a daily cash-flow timeline of periodDays days
// starting at today, combining recurring schedules with historical daily
// averages. periodDays must be >= 1; currentBalance is the opening balance.
func GenerateForecast(hist HistoricalData, recurring []model.RecurringTransaction, periodDays int, currentBalance float64, today time.Time) model.CashFlowForecast {
	start := model.Day(today)
	if periodDays < 1 {
		periodDays = 1
	}

	dailyRevenue, dailyExpense := historicalDailyAverages(hist)
	totalHistorical := len(hist.Revenues) + len(hist.Expenses)
	dataFactor := math.Min(1, float64(totalHistorical)/100)

	var active []model.RecurringTransaction
	for _, rt := range recurring {
		if rt.Active {
			active = append(active, rt)
		}
	}

	days := make([]model.CashFlowDay, 0, periodDays)
	balance := currentBalance
	for i := 0; i < periodDays; i++ {
		date := start.AddDate(0, 0, i)

		var recRevenue, recExpense float64
		for _, rt := range active {
			if !occursOn(rt, date) {
				continue
			}
			if rt.Type == model.KindRevenue {
				recRevenue += rt.Amount
			} else {
				recExpense += rt.Amount
			}
		}

		projRevenue := recRevenue + dailyRevenue
		projExpenses := recExpense + dailyExpense
		balance += projRevenue - projExpenses

		decay := 1 - float64(i)/float64(periodDays)
		confidence := int(math.Round(100 * (0.6*decay + 0.4*dataFactor)))

		days = append(days, model.CashFlowDay{
			Date:              date,
			ProjectedRevenue:  projRevenue,
			ProjectedExpenses: projExpenses,
			ProjectedBalance:  balance,
			Confidence:        clampConfidence(confidence),
			Breakdown: model.CashFlowDayBreakdown{
				RecurringRevenue:   recRevenue,
				RecurringExpenses:  recExpense,
				HistoricalRevenue:  dailyRevenue,
				HistoricalExpenses: dailyExpense,
			},
		})
	}

	return model.CashFlowForecast{
		ForecastPeriod:   periodDays,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, periodDays),
		CurrentBalance:   currentBalance,
		ProjectedBalance: balance,
		DailyProjections: days,
		Confidence:       overallConfidence(totalHistorical, len(active), periodDays),
		Assumptions:      buildAssumptions(active, totalHistorical, dailyRevenue, dailyExpense),
	}
}

// historicalDailyAverages computes per-day revenue and expense averages over
// the combined date span of both series. A single-day or empty history uses
// a span of one day.
func historicalDailyAverages(hist HistoricalData) (dailyRevenue, dailyExpense float64) {
	var minDate, maxDate time.Time
	var revenueSum, expenseSum float64
	seen := false

	observe := func(txns []model.Transaction, sum *float64) {
		for _, t := range txns {
			*sum += t.Amount
			d := model.Day(t.Date)
			if !seen {
				minDate, maxDate = d, d
				seen = true
				continue
			}
			if d.Before(minDate) {
				minDate = d
			}
			if d.After(maxDate) {
				maxDate = d
			}
		}
	}
	observe(hist.Revenues, &revenueSum)
	observe(hist.Expenses, &expenseSum)

	if !seen {
		return 0, 0
	}

	span := daysBetween(minDate, maxDate)
	if span < 1 {
		span = 1
	}
	return revenueSum / float64(span), expenseSum / float64(span)
}

// occursOn reports whether an active recurring transaction has an occurrence
// on date. Monthly, quarterly and annual rules match the start date's
// day-of-month exactly, so an anchor on the 31st is silently skipped in
// shorter months.
func occursOn(rt model.RecurringTransaction, date time.Time) bool {
	start := model.Day(rt.StartDate)
	if date.Before(start) {
		return false
	}
	if rt.EndDate != nil && date.After(model.Day(*rt.EndDate)) {
		return false
	}

	switch rt.Frequency {
	case model.FrequencyDaily:
		return true
	case model.FrequencyWeekly:
		return daysBetween(start, date)%7 == 0
	case model.FrequencyBiWeekly:
		return daysBetween(start, date)%14 == 0
	case model.FrequencyMonthly:
		return date.Day() == start.Day()
	case model.FrequencyQuarterly:
		return date.Day() == start.Day() && (int(date.Month())-int(start.Month()))%3 == 0
	case model.FrequencyAnnually:
		return date.Day() == start.Day() && date.Month() == start.Month()
	default:
		return false
	}
}

// overallConfidence scores a forecast from the amount of supporting data and
// the requested horizon. Capped at 95: a projection is never certain.
func overallConfidence(totalHistorical, activeRecurring, periodDays int) int {
	confidence := 50

	switch {
	case totalHistorical > 100:
		confidence += 20
	case totalHistorical > 50:
		confidence += 15
	case totalHistorical > 20:
		confidence += 10
	}

	switch {
	case activeRecurring > 5:
		confidence += 15
	case activeRecurring > 2:
		confidence += 10
	}

	switch {
	case periodDays <= 30:
		confidence += 10
	case periodDays <= 90:
		confidence += 5
	}

	if confidence > 95 {
		confidence = 95
	}
	return confidence
}

func buildAssumptions(active []model.RecurringTransaction, totalHistorical int, dailyRevenue, dailyExpense float64) []model.ForecastAssumption {
	var assumptions []model.ForecastAssumption

	if len(active) > 0 {
		var totalRecurring float64
		for _, rt := range active {
			totalRecurring += rt.Amount
		}
		assumptions = append(assumptions, model.ForecastAssumption{
			Description: fmt.Sprintf("Includes %d active recurring transactions totaling $%.2f per occurrence", len(active), totalRecurring),
			Impact:      totalRecurring,
		})
	}

	netDaily := dailyRevenue - dailyExpense
	assumptions = append(assumptions, model.ForecastAssumption{
		Description: fmt.Sprintf("Based on %d historical records with a net daily average of $%.2f", totalHistorical, netDaily),
		Impact:      netDaily,
	})

	return assumptions
}

func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// daysBetween returns the whole number of days from a to b, both assumed
// Day-normalized.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
