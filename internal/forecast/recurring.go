package forecast

import (
	"fmt"
	"sort"
	"time"

	"github.com/bizpulse/backend/internal/model"
	"github.com/bizpulse/backend/internal/stats"
)

// How regular the gaps between occurrences must be before a group counts as
// recurring: stddev of intervals below 20% of the mean interval.
const maxIntervalSpread = 0.20

// minOccurrences is the smallest group that can establish a pattern.
const minOccurrences = 3

// DetectRecurringTransactions scans transaction history for repeating
// payment or income patterns. Transactions are grouped by cents-rounded
// amount and label; a group of at least three with regular spacing becomes
// a candidate RecurringTransaction anchored at its earliest member.
// The returned records carry no IDs; the caller assigns them if persisting.
func DetectRecurringTransactions(txns []model.Transaction) []model.RecurringTransaction {
	groups := make(map[string][]model.Transaction)
	for _, t := range txns {
		key := fmt.Sprintf("%.2f|%s", t.Amount, t.Label)
		groups[key] = append(groups[key], t)
	}

	var detected []model.RecurringTransaction
	for _, group := range groups {
		if len(group) < minOccurrences {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		intervals := make([]float64, 0, len(group)-1)
		for i := 1; i < len(group); i++ {
			days := model.Day(group[i].Date).Sub(model.Day(group[i-1].Date)).Hours() / 24
			intervals = append(intervals, days)
		}

		mean := stats.Mean(intervals)
		if mean <= 0 || stats.StdDev(intervals) >= maxIntervalSpread*mean {
			continue
		}

		first := group[0]
		detected = append(detected, model.RecurringTransaction{
			BusinessID: first.BusinessID,
			UserID:     first.UserID,
			Type:       first.Kind,
			Name:       first.Label,
			Amount:     first.Amount,
			Frequency:  frequencyFromInterval(mean),
			StartDate:  model.Day(first.Date),
			Active:     true,
		})
	}

	// Map iteration order is random; keep output stable for callers.
	sort.Slice(detected, func(i, j int) bool {
		if detected[i].Name != detected[j].Name {
			return detected[i].Name < detected[j].Name
		}
		return detected[i].Amount < detected[j].Amount
	})
	return detected
}

// frequencyFromInterval maps a mean inter-occurrence gap in days onto a
// cadence. Gaps that fit no bucket default to monthly.
func frequencyFromInterval(meanDays float64) model.Frequency {
	switch {
	case meanDays <= 2:
		return model.FrequencyDaily
	case meanDays >= 5 && meanDays <= 9:
		return model.FrequencyWeekly
	case meanDays >= 12 && meanDays <= 16:
		return model.FrequencyBiWeekly
	case meanDays >= 28 && meanDays <= 32:
		return model.FrequencyMonthly
	case meanDays >= 88 && meanDays <= 95:
		return model.FrequencyQuarterly
	case meanDays >= 360 && meanDays <= 370:
		return model.FrequencyAnnually
	default:
		return model.FrequencyMonthly
	}
}

// NextOccurrence returns the first date strictly after from on which the
// recurring transaction occurs, or the zero time if it never occurs within
// ten years (e.g. an end date in the past).
func NextOccurrence(rt model.RecurringTransaction, from time.Time) time.Time {
	day := model.Day(from).AddDate(0, 0, 1)
	limit := day.AddDate(10, 0, 0)
	for ; day.Before(limit); day = day.AddDate(0, 0, 1) {
		if occursOn(rt, day) {
			return day
		}
	}
	return time.Time{}
}
