package v1

import (
	"fmt"

	"github.com/ledgerlens/backend/internal/importer"
	"github.com/ledgerlens/backend/internal/insights"
	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// AnalysisQueryFilter contains the settings for an analysis.
type AnalysisQueryFilter struct {
	Bracket     string `form:"bracket"`     // Income bracket to compare with
	Income      string `form:"income"`      // Annual income, used to select the bracket if none is set
	SavingsGoal string `form:"savingsGoal"` // Savings goal for the statement period
	Threshold   string `form:"threshold"`   // Recommendation threshold in percentage points
}

// Options parses the filter into the options for the insights engine
// and the threshold.
func (f AnalysisQueryFilter) Options() (insights.Options, decimal.Decimal, error) {
	income, err := parseDecimal("income", f.Income)
	if err != nil {
		return insights.Options{}, decimal.Zero, err
	}

	goal, err := parseDecimal("savingsGoal", f.SavingsGoal)
	if err != nil {
		return insights.Options{}, decimal.Zero, err
	}

	threshold, err := parseDecimal("threshold", f.Threshold)
	if err != nil {
		return insights.Options{}, decimal.Zero, err
	}

	return insights.Options{
		Bracket:     f.Bracket,
		Income:      income,
		SavingsGoal: goal,
	}, threshold, nil
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %w", name, errInvalidDecimal)
	}
	return d, nil
}

type AnalysisResponse struct {
	Error *string   `json:"error" example:"the uploaded file is missing required columns: [amount]"` // The error, if any occurred
	Data  *Analysis `json:"data"`                                                                    // The analysis
}

// Analysis is the result of analysing one statement. It is never stored.
type Analysis struct {
	Import       importer.Result      `json:"import"`       // Statistics about the imported file
	Transactions []ledger.Transaction `json:"transactions"` // All valid transactions with their category
	Summary      insights.Summary     `json:"summary"`      // Aggregates of the transactions
	Warnings     []string             `json:"warnings"`     // Skipped rows, duplicates and degraded parts of the analysis
}

// NewAnalysis creates the analysis for an import and the summary of its
// categorized transactions.
func NewAnalysis(result importer.Result, transactions []ledger.Transaction, summary insights.Summary) Analysis {
	return Analysis{
		Import:       result,
		Transactions: transactions,
		Summary:      summary,
		Warnings:     warnings(result, summary),
	}
}

// warnings collects all warnings of the import and the summary.
func warnings(result importer.Result, summary insights.Summary) []string {
	w := make([]string, 0, len(result.Skipped)+len(result.Duplicates)+len(summary.Warnings))
	for _, s := range result.Skipped {
		w = append(w, s.Error())
	}

	for _, line := range result.Duplicates {
		w = append(w, fmt.Sprintf("line %d repeats an earlier row of the file, please check if it is a duplicate", line))
	}

	return append(w, summary.Warnings...)
}
