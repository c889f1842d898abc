package benchmark

import "github.com/shopspring/decimal"

func shares(m map[string]int64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for category, share := range m {
		out[category] = decimal.NewFromInt(share)
	}
	return out
}

// Defaults returns the built-in benchmark profiles. Every profile sums up to 100.
func Defaults() Set {
	return NewSet(
		Profile{
			Bracket: BracketLow,
			Shares: shares(map[string]int64{
				"Housing":        35,
				"Food":           15,
				"Transportation": 15,
				"Entertainment":  5,
				"Shopping":       10,
				"Utilities":      10,
				"Healthcare":     5,
				"Other":          5,
			}),
		},
		Profile{
			Bracket: BracketMedium,
			Shares: shares(map[string]int64{
				"Housing":        30,
				"Food":           12,
				"Transportation": 12,
				"Entertainment":  8,
				"Shopping":       15,
				"Utilities":      8,
				"Healthcare":     8,
				"Other":          7,
			}),
		},
		Profile{
			Bracket: BracketHigh,
			Shares: shares(map[string]int64{
				"Housing":        25,
				"Food":           10,
				"Transportation": 10,
				"Entertainment":  12,
				"Shopping":       18,
				"Utilities":      7,
				"Healthcare":     10,
				"Other":          8,
			}),
		},
	)
}
