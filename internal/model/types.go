// Package model defines the domain records shared by the store, the
// ingestion boundary, and the analysis engines. All monetary amounts are
// dollars in the business's single currency; all dates are day-granularity
// and normalized to UTC midnight.
package model

import "time"

// TransactionKind discriminates revenue from expense records when both flow
// through shared code paths.
type TransactionKind string

const (
	KindRevenue TransactionKind = "revenue"
	KindExpense TransactionKind = "expense"
)

// Transaction is the tagged union of Revenue and Expense used by the
// analysis engines. Label carries the grouping key: the revenue source or
// the expense category.
type Transaction struct {
	ID          string          `json:"id" firestore:"Id"`
	BusinessID  string          `json:"businessId" firestore:"BusinessId"`
	UserID      string          `json:"userId" firestore:"UserId"`
	Kind        TransactionKind `json:"kind" firestore:"Kind"`
	Amount      float64         `json:"amount" firestore:"Amount"`
	Date        time.Time       `json:"date" firestore:"Date"`
	Label       string          `json:"label" firestore:"Label"`
	Description string          `json:"description,omitempty" firestore:"Description"`
}

// Revenue is a stored revenue record.
type Revenue struct {
	ID          string    `json:"id" firestore:"Id"`
	BusinessID  string    `json:"businessId" firestore:"BusinessId"`
	UserID      string    `json:"userId" firestore:"UserId"`
	Amount      float64   `json:"amount" firestore:"Amount"`
	Date        time.Time `json:"date" firestore:"Date"`
	Source      string    `json:"source" firestore:"Source"`
	Description string    `json:"description,omitempty" firestore:"Description"`
	CreatedAt   time.Time `json:"createdAt" firestore:"CreatedAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"UpdatedAt"`
}

// Transaction converts the stored record into the tagged engine view.
func (r *Revenue) Transaction() Transaction {
	return Transaction{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		UserID:      r.UserID,
		Kind:        KindRevenue,
		Amount:      r.Amount,
		Date:        r.Date,
		Label:       r.Source,
		Description: r.Description,
	}
}

// Expense is a stored expense record.
type Expense struct {
	ID          string    `json:"id" firestore:"Id"`
	BusinessID  string    `json:"businessId" firestore:"BusinessId"`
	UserID      string    `json:"userId" firestore:"UserId"`
	Amount      float64   `json:"amount" firestore:"Amount"`
	Date        time.Time `json:"date" firestore:"Date"`
	Category    string    `json:"category" firestore:"Category"`
	Description string    `json:"description,omitempty" firestore:"Description"`
	ReceiptPath string    `json:"receiptPath,omitempty" firestore:"ReceiptPath"`
	CreatedAt   time.Time `json:"createdAt" firestore:"CreatedAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"UpdatedAt"`
}

// Transaction converts the stored record into the tagged engine view.
func (e *Expense) Transaction() Transaction {
	return Transaction{
		ID:          e.ID,
		BusinessID:  e.BusinessID,
		UserID:      e.UserID,
		Kind:        KindExpense,
		Amount:      e.Amount,
		Date:        e.Date,
		Label:       e.Category,
		Description: e.Description,
	}
}

// Frequency is the cadence of a recurring transaction.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// RecurringTransaction is a scheduled, repeating revenue or expense.
// It contributes to a forecast day only while Active and only when the day
// falls inside [StartDate, EndDate] and matches the frequency rule.
type RecurringTransaction struct {
	ID         string          `json:"id" firestore:"Id"`
	BusinessID string          `json:"businessId" firestore:"BusinessId"`
	UserID     string          `json:"userId" firestore:"UserId"`
	Type       TransactionKind `json:"type" firestore:"Type"`
	Name       string          `json:"name" firestore:"Name"`
	Amount     float64         `json:"amount" firestore:"Amount"`
	Frequency  Frequency       `json:"frequency" firestore:"Frequency"`
	StartDate  time.Time       `json:"startDate" firestore:"StartDate"`
	EndDate    *time.Time      `json:"endDate,omitempty" firestore:"EndDate"`
	Active     bool            `json:"active" firestore:"Active"`
	CreatedAt  time.Time       `json:"createdAt" firestore:"CreatedAt"`
	UpdatedAt  time.Time       `json:"updatedAt" firestore:"UpdatedAt"`
}

// CashFlowDayBreakdown splits a day's projections into the portion driven by
// recurring schedules and the portion driven by historical daily averages.
type CashFlowDayBreakdown struct {
	RecurringRevenue   float64 `json:"recurringRevenue" firestore:"RecurringRevenue"`
	RecurringExpenses  float64 `json:"recurringExpenses" firestore:"RecurringExpenses"`
	HistoricalRevenue  float64 `json:"historicalRevenue" firestore:"HistoricalRevenue"`
	HistoricalExpenses float64 `json:"historicalExpenses" firestore:"HistoricalExpenses"`
}

// CashFlowDay is one entry of a forecast's daily projection sequence.
type CashFlowDay struct {
	Date              time.Time            `json:"date" firestore:"Date"`
	ProjectedRevenue  float64              `json:"projectedRevenue" firestore:"ProjectedRevenue"`
	ProjectedExpenses float64              `json:"projectedExpenses" firestore:"ProjectedExpenses"`
	ProjectedBalance  float64              `json:"projectedBalance" firestore:"ProjectedBalance"`
	Confidence        int                  `json:"confidence" firestore:"Confidence"`
	Breakdown         CashFlowDayBreakdown `json:"breakdown" firestore:"Breakdown"`
}

// ForecastAssumption is a human-readable note attached to a forecast, with
// the numeric value it is based on.
type ForecastAssumption struct {
	Description string  `json:"description" firestore:"Description"`
	Impact      float64 `json:"impact" firestore:"Impact"`
}

// CashFlowForecast is the output of the forecast engine. It is created
// fresh per request and never mutated afterwards.
type CashFlowForecast struct {
	ID               string               `json:"id,omitempty" firestore:"Id"`
	BusinessID       string               `json:"businessId,omitempty" firestore:"BusinessId"`
	ForecastPeriod   int                  `json:"forecastPeriod" firestore:"ForecastPeriod"`
	StartDate        time.Time            `json:"startDate" firestore:"StartDate"`
	EndDate          time.Time            `json:"endDate" firestore:"EndDate"`
	CurrentBalance   float64              `json:"currentBalance" firestore:"CurrentBalance"`
	ProjectedBalance float64              `json:"projectedBalance" firestore:"ProjectedBalance"`
	DailyProjections []CashFlowDay        `json:"dailyProjections" firestore:"DailyProjections"`
	Confidence       int                  `json:"confidence" firestore:"Confidence"`
	Assumptions      []ForecastAssumption `json:"assumptions" firestore:"Assumptions"`
	CreatedAt        time.Time            `json:"createdAt,omitempty" firestore:"CreatedAt"`
}

// InsightType classifies an insight.
type InsightType string

const (
	InsightAnomaly     InsightType = "anomaly"
	InsightWarning     InsightType = "warning"
	InsightOpportunity InsightType = "opportunity"
	InsightCostSavings InsightType = "cost-savings"
)

// InsightImpact is the qualitative weight of an insight.
type InsightImpact string

const (
	ImpactLow    InsightImpact = "low"
	ImpactMedium InsightImpact = "medium"
	ImpactHigh   InsightImpact = "high"
)

// Insight is a single finding from the insights engine. The engine leaves
// ID and BusinessID empty; the caller assigns them before persisting.
// Acknowledged is caller-managed and always starts false.
type Insight struct {
	ID               string        `json:"id,omitempty" firestore:"Id"`
	BusinessID       string        `json:"businessId,omitempty" firestore:"BusinessId"`
	Type             InsightType   `json:"type" firestore:"Type"`
	Category         string        `json:"category" firestore:"Category"`
	Title            string        `json:"title" firestore:"Title"`
	Description      string        `json:"description" firestore:"Description"`
	Impact           InsightImpact `json:"impact" firestore:"Impact"`
	Confidence       int           `json:"confidence" firestore:"Confidence"`
	EstimatedSavings float64       `json:"estimatedSavings,omitempty" firestore:"EstimatedSavings"`
	Actionable       bool          `json:"actionable" firestore:"Actionable"`
	ActionItems      []string      `json:"actionItems,omitempty" firestore:"ActionItems"`
	RelatedExpenses  []string      `json:"relatedExpenses,omitempty" firestore:"RelatedExpenses"`
	Acknowledged     bool          `json:"acknowledged" firestore:"Acknowledged"`
	CreatedAt        time.Time     `json:"createdAt,omitempty" firestore:"CreatedAt"`
}

// CostOptimization is a per-category spend reduction recommendation.
type CostOptimization struct {
	Category          string   `json:"category" firestore:"Category"`
	CurrentSpend      float64  `json:"currentSpend" firestore:"CurrentSpend"`
	RecommendedSpend  float64  `json:"recommendedSpend" firestore:"RecommendedSpend"`
	PotentialSavings  float64  `json:"potentialSavings" firestore:"PotentialSavings"`
	Recommendation    string   `json:"recommendation" firestore:"Recommendation"`
	VendorSuggestions []string `json:"vendorSuggestions,omitempty" firestore:"VendorSuggestions"`
}

// TrendDirection describes how a category's monthly spend is moving.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// SeasonalFactor is a month-of-year multiplier against the overall average.
type SeasonalFactor struct {
	Month      time.Month `json:"month" firestore:"Month"`
	Multiplier float64    `json:"multiplier" firestore:"Multiplier"`
}

// SpendingPattern summarizes a category's monthly spending behavior.
type SpendingPattern struct {
	Category        string           `json:"category" firestore:"Category"`
	AverageMonthly  float64          `json:"averageMonthly" firestore:"AverageMonthly"`
	Trend           TrendDirection   `json:"trend" firestore:"Trend"`
	Variance        float64          `json:"variance" firestore:"Variance"`
	SeasonalFactors []SeasonalFactor `json:"seasonalFactors" firestore:"SeasonalFactors"`
}

// TrendResult is the output of the forecast engine's weekly trend analysis.
// Direction is "up", "down" or "stable".
type TrendResult struct {
	Slope     float64 `json:"slope"`
	Direction string  `json:"direction"`
}

// InventoryItem is a stocked product tracked by the dashboard.
type InventoryItem struct {
	ID           string    `json:"id" firestore:"Id"`
	BusinessID   string    `json:"businessId" firestore:"BusinessId"`
	UserID       string    `json:"userId" firestore:"UserId"`
	Name         string    `json:"name" firestore:"Name"`
	SKU          string    `json:"sku,omitempty" firestore:"Sku"`
	Quantity     int       `json:"quantity" firestore:"Quantity"`
	UnitCost     float64   `json:"unitCost" firestore:"UnitCost"`
	ReorderLevel int       `json:"reorderLevel,omitempty" firestore:"ReorderLevel"`
	CreatedAt    time.Time `json:"createdAt" firestore:"CreatedAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"UpdatedAt"`
}

// TaxConfig holds the business's estimated-tax settings.
type TaxConfig struct {
	BusinessID string  `json:"businessId" firestore:"BusinessId"`
	Rate       float64 `json:"rate" firestore:"Rate"` // percentage, e.g. 25 for 25%
}

// Day returns t truncated to UTC midnight. All engine date arithmetic works
// on Day-normalized values.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
