package insights

import (
	"fmt"
	"sort"

	"github.com/ledgerlens/backend/internal/ledger"
)

var tips = map[string]string{
	"Food":           "Try batch-cooking and cutting takeout days.",
	"Entertainment":  "Look for free local events or streaming bundles.",
	"Shopping":       "Implement a 24-hour rule before impulse buys.",
	"Transportation": "Consider monthly transit passes or carpooling.",
	"Housing":        "Compare your rent or mortgage rate with current offers and check if refinancing pays off.",
	"Utilities":      "Check your contracts for electricity, internet and phone for cheaper plans.",

	ledger.Uncategorized: "Categorize these transactions or add category rules for them, so that they can be compared with the benchmark.",
}

func tip(category string) string {
	if t, ok := tips[category]; ok {
		return t
	}
	return fmt.Sprintf("Review your recurring %s expenses and set a monthly limit.", category)
}

// recommend returns a recommendation for every category that exceeds its
// benchmark share by more than the threshold, largest delta first.
func (e Engine) recommend(c *Comparison) []Recommendation {
	recommendations := make([]Recommendation, 0)
	if c == nil {
		return recommendations
	}

	for _, d := range c.Deltas {
		if !d.Delta.GreaterThan(e.Threshold) {
			continue
		}

		recommendations = append(recommendations, Recommendation{
			Category: d.Category,
			Delta:    d.Delta,
			Message: fmt.Sprintf("You spend %s%% of your spending on %s, %s percentage points more than the benchmark of %s%%.",
				d.User.StringFixed(2), d.Category, d.Delta.StringFixed(2), d.Benchmark.StringFixed(2)),
			Tip: tip(d.Category),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if !recommendations[i].Delta.Equal(recommendations[j].Delta) {
			return recommendations[i].Delta.GreaterThan(recommendations[j].Delta)
		}
		return recommendations[i].Category < recommendations[j].Category
	})

	return recommendations
}
