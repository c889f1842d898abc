// Package insights aggregates categorized transactions into trends, a
// category breakdown and a comparison with benchmark spending profiles.
package insights

import (
	"fmt"
	"sort"

	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/ledgerlens/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultThreshold is the number of percentage points a category share must
// exceed its benchmark by to get a recommendation.
var DefaultThreshold = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

var ErrUnknownBracket = benchmark.ErrUnknownBracket

// Engine computes summaries. It is safe for concurrent use.
type Engine struct {
	Threshold  decimal.Decimal
	Benchmarks benchmark.Set
}

// Options select the benchmark and the savings goal for an analysis.
type Options struct {
	// Bracket selects the benchmark profile. If it is empty, the bracket is
	// derived from Income. If both are empty, no comparison is made.
	Bracket string

	// Income is the annual income.
	Income decimal.Decimal

	// SavingsGoal is optional.
	SavingsGoal decimal.Decimal
}

func New(threshold decimal.Decimal, benchmarks benchmark.Set) Engine {
	if !threshold.IsPositive() {
		threshold = DefaultThreshold
	}

	return Engine{Threshold: threshold, Benchmarks: benchmarks}
}

// Analyze computes the summary for categorized transactions.
func (e Engine) Analyze(transactions []ledger.Transaction, opts Options) Summary {
	s := Summary{
		Monthly:         monthly(transactions),
		CategoryTrend:   categoryTrend(transactions),
		Recommendations: make([]Recommendation, 0),
		Warnings:        make([]string, 0),
	}

	s.Overview = overview(transactions, s.Monthly)
	s.Categories = breakdown(transactions, s.Overview)

	profile, err := e.profile(opts)
	if err != nil {
		s.Warnings = append(s.Warnings, fmt.Sprintf("the benchmark comparison is not available: %s", err))
	}

	if profile != nil && s.Overview.Spend.IsPositive() {
		s.Benchmark = compare(s.Categories, *profile)
		s.Recommendations = e.recommend(s.Benchmark)
	}

	if opts.SavingsGoal.IsPositive() {
		s.SavingsGoal = savings(opts.SavingsGoal, s.Overview.Net)
	}

	return s
}

// profile resolves the benchmark profile for the options. It returns nil
// when no bracket was selected.
func (e Engine) profile(opts Options) (*benchmark.Profile, error) {
	var bracket benchmark.Bracket
	switch {
	case opts.Bracket != "":
		b, err := benchmark.ParseBracket(opts.Bracket)
		if err != nil {
			return nil, err
		}
		bracket = b
	case opts.Income.IsPositive():
		bracket = benchmark.ForIncome(opts.Income)
	default:
		return nil, nil
	}

	p, ok := e.Benchmarks.Profile(bracket)
	if !ok {
		return nil, fmt.Errorf("%w: no benchmark profile for %q", ErrUnknownBracket, bracket)
	}

	return &p, nil
}

func overview(transactions []ledger.Transaction, months []MonthTotal) Overview {
	o := Overview{
		Transactions: len(transactions),
		Months:       len(months),
		Income:       decimal.Zero,
		Spend:        decimal.Zero,
	}

	for _, t := range transactions {
		if t.IsIncome() {
			o.Income = o.Income.Add(t.Amount)
		}
		o.Spend = o.Spend.Add(t.Spend())
	}
	o.Net = o.Income.Sub(o.Spend)

	o.SavingsRate = decimal.Zero
	if o.Income.IsPositive() {
		o.SavingsRate = o.Net.Div(o.Income).Mul(hundred).Round(2)
	}

	o.MonthlyIncome = perMonth(o.Income, o.Months)
	o.MonthlySpend = perMonth(o.Spend, o.Months)
	o.MonthlySavings = perMonth(o.Net, o.Months)

	if len(months) > 0 {
		first, last := months[0].Month, months[len(months)-1].Month
		o.First, o.Last = &first, &last
		o.Span = types.MonthsBetween(first, last)
	}

	return o
}

func perMonth(d decimal.Decimal, months int) decimal.Decimal {
	if months == 0 {
		return decimal.Zero
	}
	return d.Div(decimal.NewFromInt(int64(months))).Round(2)
}

// monthly sums up the transactions per calendar month.
func monthly(transactions []ledger.Transaction) []MonthTotal {
	totals := make(map[string]*MonthTotal)
	for _, t := range transactions {
		m := t.Month()
		total, ok := totals[m.String()]
		if !ok {
			total = &MonthTotal{Month: m, Spend: decimal.Zero, Income: decimal.Zero, Net: decimal.Zero}
			totals[m.String()] = total
		}

		total.Spend = total.Spend.Add(t.Spend())
		if t.IsIncome() {
			total.Income = total.Income.Add(t.Amount)
		}
		total.Net = total.Net.Add(t.Amount)
		total.Transactions++
	}

	out := make([]MonthTotal, 0, len(totals))
	for _, total := range totals {
		out = append(out, *total)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})

	return out
}

func categoryOf(t ledger.Transaction) string {
	if t.Category == "" {
		return ledger.Uncategorized
	}
	return t.Category
}

// breakdown sums up the transactions per category.
func breakdown(transactions []ledger.Transaction, o Overview) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	for _, t := range transactions {
		category := categoryOf(t)
		total, ok := totals[category]
		if !ok {
			total = &CategoryTotal{Category: category, Total: decimal.Zero, Spend: decimal.Zero}
			totals[category] = total
		}

		total.Total = total.Total.Add(t.Amount)
		total.Spend = total.Spend.Add(t.Spend())
		total.Transactions++
	}

	out := make([]CategoryTotal, 0, len(totals))
	for _, total := range totals {
		total.Percentage = share(total.Spend, o.Spend).Round(2)
		total.MonthlyAverage = perMonth(total.Spend, o.Months)
		out = append(out, *total)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Spend.Equal(out[j].Spend) {
			return out[i].Spend.GreaterThan(out[j].Spend)
		}
		return out[i].Category < out[j].Category
	})

	return out
}

// share returns part as percentage of total.
func share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// categoryTrend sums up the spend per month and category.
func categoryTrend(transactions []ledger.Transaction) []CategoryMonth {
	type key struct {
		month    string
		category string
	}

	totals := make(map[key]*CategoryMonth)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		k := key{t.Month().String(), categoryOf(t)}
		total, ok := totals[k]
		if !ok {
			total = &CategoryMonth{Month: t.Month(), Category: k.category, Spend: decimal.Zero}
			totals[k] = total
		}
		total.Spend = total.Spend.Add(t.Spend())
	}

	out := make([]CategoryMonth, 0, len(totals))
	for _, total := range totals {
		out = append(out, *total)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Month.Equal(out[j].Month) {
			return out[i].Month.Before(out[j].Month)
		}
		return out[i].Category < out[j].Category
	})

	return out
}

// compare computes the deltas for all categories that either have spend or
// are part of the profile.
func compare(categories []CategoryTotal, profile benchmark.Profile) *Comparison {
	user := make(map[string]decimal.Decimal)
	for _, c := range categories {
		if c.Spend.IsPositive() {
			user[c.Category] = c.Percentage
		}
	}

	names := profile.Categories()
	for category := range user {
		if _, ok := profile.Share(category); !ok {
			names = append(names, category)
		}
	}
	sort.Strings(names)

	deltas := make([]Delta, 0, len(names))
	for _, category := range names {
		u, ok := user[category]
		if !ok {
			u = decimal.Zero
		}

		b, ok := profile.Share(category)
		if !ok {
			b = decimal.Zero
		}

		deltas = append(deltas, Delta{
			Category:  category,
			User:      u,
			Benchmark: b,
			Delta:     u.Sub(b).Round(2),
		})
	}

	return &Comparison{Bracket: profile.Bracket, Deltas: deltas}
}

func savings(goal, saved decimal.Decimal) *SavingsProgress {
	progress := saved.Div(goal)
	if progress.IsNegative() {
		progress = decimal.Zero
	}
	if progress.GreaterThan(decimal.NewFromInt(1)) {
		progress = decimal.NewFromInt(1)
	}

	remaining := goal.Sub(saved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &SavingsProgress{
		Goal:      goal,
		Saved:     saved,
		Remaining: remaining,
		Progress:  progress.Round(4),
	}
}
