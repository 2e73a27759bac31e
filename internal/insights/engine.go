// Package insights detects statistical outliers, duplicate charges and
// benchmark deviations in expense data and recommends cost optimizations.
// Like the forecast engine it is pure: it reads in-memory records, returns
// fresh result records and keeps no state between calls.
package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/bizpulse/backend/internal/model"
	"github.com/bizpulse/backend/internal/stats"
)

const (
	// DefaultAnomalyThreshold is how many standard deviations above the
	// category mean an expense must sit to be flagged.
	DefaultAnomalyThreshold = 2.0

	duplicateAmountTolerance = 0.01
	duplicateWindowDays      = 3

	anomalyConfidence   = 85
	duplicateConfidence = 70
	benchmarkConfidence = 65
)

// Analyzer runs the insight heuristics with a given Config. It holds no
// mutable state; a single Analyzer is safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer returns an Analyzer using cfg.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// DetectAnomalies flags expenses whose amount exceeds the category mean by
// more than thresholdStdDevs population standard deviations, emitting one
// Insight per affected category. A threshold <= 0 uses the default of 2.
func (a *Analyzer) DetectAnomalies(expenses []model.Transaction, thresholdStdDevs float64) []model.Insight {
	if thresholdStdDevs <= 0 {
		thresholdStdDevs = DefaultAnomalyThreshold
	}

	byCategory := groupByLabel(expenses)

	var insights []model.Insight
	for category, group := range byCategory {
		if len(group) < 3 {
			continue
		}
		amounts := make([]float64, len(group))
		for i, e := range group {
			amounts[i] = e.Amount
		}
		mean := stats.Mean(amounts)

		// Each expense is tested against the distribution of the other
		// expenses in its category, so a single large outlier cannot
		// inflate its own baseline out of detection range.
		var flagged []model.Transaction
		var flaggedTotal float64
		for i, e := range group {
			rest := make([]float64, 0, len(amounts)-1)
			rest = append(rest, amounts[:i]...)
			rest = append(rest, amounts[i+1:]...)
			cutoff := stats.Mean(rest) + thresholdStdDevs*stats.StdDev(rest)
			if e.Amount > cutoff {
				flagged = append(flagged, e)
				flaggedTotal += e.Amount
			}
		}
		if len(flagged) == 0 {
			continue
		}

		impact := model.ImpactLow
		switch {
		case flaggedTotal > 3*mean:
			impact = model.ImpactHigh
		case flaggedTotal > 1.5*mean:
			impact = model.ImpactMedium
		}

		ids := make([]string, len(flagged))
		for i, e := range flagged {
			ids[i] = e.ID
		}

		insights = append(insights, model.Insight{
			Type:     model.InsightAnomaly,
			Category: category,
			Title:    fmt.Sprintf("Unusual spending in %s", category),
			Description: fmt.Sprintf("%d expense(s) in %s totaling $%.2f are well above the category average of $%.2f.",
				len(flagged), category, flaggedTotal, mean),
			Impact:     impact,
			Confidence: anomalyConfidence,
			Actionable: true,
			ActionItems: []string{
				"Verify these charges are legitimate",
				"Check whether the purchases could have been made at a lower price",
			},
			RelatedExpenses: ids,
		})
	}

	sort.Slice(insights, func(i, j int) bool { return insights[i].Category < insights[j].Category })
	return insights
}

// FindDuplicateExpenses looks for clusters of expenses with the same
// category, near-identical amounts and dates within a few days of each
// other. The comparison is pairwise; expense lists per business are small
// enough that the quadratic scan is fine.
func (a *Analyzer) FindDuplicateExpenses(expenses []model.Transaction) []model.Insight {
	type cluster struct {
		category string
		amount   float64
		members  map[string]model.Transaction
	}
	clusters := make(map[string]*cluster)

	for i := 0; i < len(expenses); i++ {
		for j := i + 1; j < len(expenses); j++ {
			ei, ej := expenses[i], expenses[j]
			if ei.Label != ej.Label {
				continue
			}
			if math.Abs(ei.Amount-ej.Amount) > duplicateAmountTolerance {
				continue
			}
			gap := model.Day(ej.Date).Sub(model.Day(ei.Date)).Hours() / 24
			if math.Abs(gap) > duplicateWindowDays {
				continue
			}

			key := fmt.Sprintf("%s|%.2f", ei.Label, ei.Amount)
			c, ok := clusters[key]
			if !ok {
				c = &cluster{category: ei.Label, amount: ei.Amount, members: make(map[string]model.Transaction)}
				clusters[key] = c
			}
			c.members[ei.ID] = ei
			c.members[ej.ID] = ej
		}
	}

	var insights []model.Insight
	for _, c := range clusters {
		if len(c.members) < 2 {
			continue
		}

		ids := make([]string, 0, len(c.members))
		var total float64
		for id, e := range c.members {
			ids = append(ids, id)
			total += e.Amount
		}
		sort.Strings(ids)
		savings := total - c.members[ids[0]].Amount

		insights = append(insights, model.Insight{
			Type:     model.InsightWarning,
			Category: c.category,
			Title:    fmt.Sprintf("Possible duplicate charges in %s", c.category),
			Description: fmt.Sprintf("%d expenses of $%.2f in %s occurred within %d days of each other.",
				len(c.members), c.amount, c.category, duplicateWindowDays),
			Impact:           model.ImpactMedium,
			Confidence:       duplicateConfidence,
			EstimatedSavings: savings,
			Actionable:       true,
			ActionItems: []string{
				"Confirm each charge corresponds to a distinct purchase",
				"Request a refund for any accidental double payment",
			},
			RelatedExpenses: ids,
		})
	}

	sort.Slice(insights, func(i, j int) bool {
		if insights[i].Category != insights[j].Category {
			return insights[i].Category < insights[j].Category
		}
		return insights[i].EstimatedSavings > insights[j].EstimatedSavings
	})
	return insights
}

// CompareToBenchmarks checks category spend against the configured
// industry-benchmark fractions of revenue and surfaces categories running
// more than 50% over their benchmark. With zero revenue there is nothing to
// compare against and the result is empty.
func (a *Analyzer) CompareToBenchmarks(expenses []model.Transaction, totalRevenue float64) []model.Insight {
	if totalRevenue <= 0 {
		return nil
	}

	totals := make(map[string]float64)
	idsByCategory := make(map[string][]string)
	for _, e := range expenses {
		totals[e.Label] += e.Amount
		idsByCategory[e.Label] = append(idsByCategory[e.Label], e.ID)
	}

	var insights []model.Insight
	for category, actual := range totals {
		benchmark, ok := a.cfg.Benchmarks[category]
		if !ok {
			continue
		}
		if actual/totalRevenue <= 1.5*benchmark {
			continue
		}

		savings := actual - totalRevenue*benchmark
		impact := model.ImpactMedium
		if savings > 0.05*totalRevenue {
			impact = model.ImpactHigh
		}

		insights = append(insights, model.Insight{
			Type:     model.InsightOpportunity,
			Category: category,
			Title:    fmt.Sprintf("%s spend is above industry benchmark", category),
			Description: fmt.Sprintf("%s is %.1f%% of revenue against a benchmark of %.1f%%. Bringing it in line would free up $%.2f.",
				category, actual/totalRevenue*100, benchmark*100, savings),
			Impact:           impact,
			Confidence:       benchmarkConfidence,
			EstimatedSavings: savings,
			Actionable:       true,
			ActionItems: []string{
				fmt.Sprintf("Target %s spend of $%.2f or less", category, totalRevenue*benchmark),
			},
			RelatedExpenses: idsByCategory[category],
		})
	}

	sort.Slice(insights, func(i, j int) bool { return insights[i].Category < insights[j].Category })
	return insights
}

func groupByLabel(txns []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, t := range txns {
		groups[t.Label] = append(groups[t.Label], t)
	}
	return groups
}
