package insights

import (
	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Summary is the result of an analysis. It is computed from scratch for
// every analysis and never modified afterwards.
type Summary struct {
	Overview        Overview         `json:"overview"`
	Monthly         []MonthTotal     `json:"monthly"`         // Totals per month in chronological order
	Categories      []CategoryTotal  `json:"categories"`      // Totals per category, highest spend first
	CategoryTrend   []CategoryMonth  `json:"categoryTrend"`   // Spend per month and category
	Benchmark       *Comparison      `json:"benchmark"`       // Comparison with the benchmark profile, if one was selected
	Recommendations []Recommendation `json:"recommendations"` // Categories with spending notably above the benchmark
	SavingsGoal     *SavingsProgress `json:"savingsGoal"`     // Progress towards the savings goal, if one was set
	Warnings        []string         `json:"warnings"`        // Problems that degraded parts of the analysis
}

type Overview struct {
	Transactions   int             `json:"transactions" example:"214"`
	Months         int             `json:"months" example:"6"` // Number of distinct months with transactions
	Span           int             `json:"span" example:"6"`   // Calendar months from the first to the last transaction, gaps included
	First          *types.Month    `json:"first" swaggertype:"string" example:"2024-01"`
	Last           *types.Month    `json:"last" swaggertype:"string" example:"2024-06"`
	Income         decimal.Decimal `json:"income" swaggertype:"string" example:"24000"`
	Spend          decimal.Decimal `json:"spend" swaggertype:"string" example:"19876.54"`
	Net            decimal.Decimal `json:"net" swaggertype:"string" example:"4123.46"`
	SavingsRate    decimal.Decimal `json:"savingsRate" swaggertype:"string" example:"17.18"` // Net as percentage of income
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome" swaggertype:"string" example:"4000"`
	MonthlySpend   decimal.Decimal `json:"monthlySpend" swaggertype:"string" example:"3312.76"`
	MonthlySavings decimal.Decimal `json:"monthlySavings" swaggertype:"string" example:"687.24"`
}

type MonthTotal struct {
	Month        types.Month     `json:"month" swaggertype:"string" example:"2024-03"`
	Spend        decimal.Decimal `json:"spend" swaggertype:"string" example:"3120.55"`
	Income       decimal.Decimal `json:"income" swaggertype:"string" example:"4000"`
	Net          decimal.Decimal `json:"net" swaggertype:"string" example:"879.45"`
	Transactions int             `json:"transactions" example:"37"`
}

type CategoryTotal struct {
	Category       string          `json:"category" example:"Food"`
	Total          decimal.Decimal `json:"total" swaggertype:"string" example:"-612.40"` // Signed sum of all amounts
	Spend          decimal.Decimal `json:"spend" swaggertype:"string" example:"612.40"`
	Percentage     decimal.Decimal `json:"percentage" swaggertype:"string" example:"14.25"` // Share of total spend
	MonthlyAverage decimal.Decimal `json:"monthlyAverage" swaggertype:"string" example:"102.07"`
	Transactions   int             `json:"transactions" example:"23"`
}

type CategoryMonth struct {
	Month    types.Month     `json:"month" swaggertype:"string" example:"2024-03"`
	Category string          `json:"category" example:"Food"`
	Spend    decimal.Decimal `json:"spend" swaggertype:"string" example:"98.12"`
}

// Comparison compares the spending shares with a benchmark profile.
type Comparison struct {
	Bracket benchmark.Bracket `json:"bracket" example:"50k-100k"`
	Deltas  []Delta           `json:"deltas"`
}

// Delta is the difference between the share of spend of a category and the
// benchmark share, in percentage points.
type Delta struct {
	Category  string          `json:"category" example:"Food"`
	User      decimal.Decimal `json:"user" swaggertype:"string" example:"16"`
	Benchmark decimal.Decimal `json:"benchmark" swaggertype:"string" example:"10"`
	Delta     decimal.Decimal `json:"delta" swaggertype:"string" example:"6"`
}

type Recommendation struct {
	Category string          `json:"category" example:"Food"`
	Delta    decimal.Decimal `json:"delta" swaggertype:"string" example:"6"`
	Message  string          `json:"message" example:"You spend 16% of your spending on Food, 6 percentage points more than the benchmark of 10%."`
	Tip      string          `json:"tip" example:"Try batch-cooking and cutting takeout days."`
}

type SavingsProgress struct {
	Goal      decimal.Decimal `json:"goal" swaggertype:"string" example:"10000"`
	Saved     decimal.Decimal `json:"saved" swaggertype:"string" example:"4123.46"`
	Remaining decimal.Decimal `json:"remaining" swaggertype:"string" example:"5876.54"`
	Progress  decimal.Decimal `json:"progress" swaggertype:"string" example:"0.41"` // Between 0 and 1
}
