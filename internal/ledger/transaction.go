// Package ledger contains the in-memory transaction table that flows through
// an analysis. Nothing in this package is ever persisted.
package ledger

import (
	"time"

	"github.com/ledgerlens/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Uncategorized is the category every transaction falls back to when no
// classifier and no rule could assign one.
const Uncategorized = "Uncategorized"

// Transaction is a single parsed statement row.
type Transaction struct {
	Date        time.Time       `json:"date" example:"2024-03-14T00:00:00Z"`                                                   // Booking date of the transaction
	Description string          `json:"description" example:"TRADER JOES #552"`                                                // Description as it appears on the statement
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"-42.17"`                                          // Signed amount, negative values are expenses
	Category    string          `json:"category" example:"Food"`                                                               // Spending category
	ImportHash  string          `json:"importHash" example:"1f9c0c1d2a8b6e3e4f0a6b7c8d9e0f1a2b3c4d5e6f708192a3b4c5d6e7f80912"` // SHA256 of the raw row
	Line        int             `json:"line" example:"4"`                                                                      // Line of the row in the uploaded file
}

// IsExpense reports whether the transaction takes money out of the account.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction brings money into the account.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// Spend is the absolute value of an expense, zero for income.
func (t Transaction) Spend() decimal.Decimal {
	if !t.IsExpense() {
		return decimal.Zero
	}
	return t.Amount.Neg()
}

// Month returns the calendar month the transaction was booked in.
func (t Transaction) Month() types.Month {
	return types.MonthOf(t.Date)
}

// Categorized reports whether the transaction already carries a category.
func (t Transaction) Categorized() bool {
	return t.Category != ""
}

// Sum returns the signed sum of all amounts.
func Sum(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}
