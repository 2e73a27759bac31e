package insights

// Config carries the business heuristics the analyzer applies. The tables
// are hardcoded industry rules of thumb, not derived data; they live here so
// tests can substitute their own.
type Config struct {
	// Benchmarks maps an expense category to its expected fraction of
	// total revenue.
	Benchmarks map[string]float64

	// SavingsRates maps an expense category to the fraction of its spend
	// assumed recoverable through cost optimization.
	SavingsRates map[string]float64

	// DefaultSavingsRate applies to categories missing from SavingsRates.
	DefaultSavingsRate float64

	// MinSavings is the strict lower bound a potential saving must exceed
	// before an optimization is worth surfacing.
	MinSavings float64
}

// DefaultConfig returns the standard heuristic tables.
func DefaultConfig() Config {
	return Config{
		Benchmarks: map[string]float64{
			"Marketing":      0.10,
			"Supplies":       0.05,
			"Utilities":      0.03,
			"Rent":           0.10,
			"Insurance":      0.02,
			"Transportation": 0.05,
		},
		SavingsRates: map[string]float64{
			"Marketing":      0.15,
			"Supplies":       0.10,
			"Utilities":      0.08,
			"Transportation": 0.12,
			"Equipment":      0.10,
		},
		DefaultSavingsRate: 0.08,
		MinSavings:         50,
	}
}

// savingsRecommendations maps categories to advice templates. Categories
// without a specific template get the generic one.
var savingsRecommendations = map[string]string{
	"Marketing":      "Review channel performance and shift budget toward the campaigns with measurable returns.",
	"Supplies":       "Consolidate orders with a single supplier and negotiate volume pricing.",
	"Utilities":      "Audit usage and switch to a cheaper plan or provider where available.",
	"Transportation": "Batch deliveries and compare courier rates to reduce per-trip costs.",
	"Equipment":      "Consider leasing or buying refurbished instead of purchasing new equipment.",
}

const genericRecommendation = "Review recent purchases in this category for unused or renegotiable spend."

var vendorSuggestions = map[string][]string{
	"Supplies":  {"Compare wholesale suppliers", "Join a group purchasing organization"},
	"Utilities": {"Request a rate review from your current provider"},
	"Marketing": {"Evaluate lower-cost digital channels"},
}
