// Package benchmark holds the reference spending profiles that users are
// compared against. Profiles are keyed by an income bracket.
package benchmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bracket is a discrete range of annual income.
type Bracket string

// The supported brackets, in ascending order of income.
const (
	BracketLow    Bracket = "under-50k"
	BracketMedium Bracket = "50k-100k"
	BracketHigh   Bracket = "over-100k"
)

var ErrUnknownBracket = errors.New("unknown income bracket")

// Brackets returns all brackets in ascending order.
func Brackets() []Bracket {
	return []Bracket{BracketLow, BracketMedium, BracketHigh}
}

var (
	lowUpperBound    = decimal.NewFromInt(50000)
	mediumUpperBound = decimal.NewFromInt(100000)
)

// ParseBracket parses a bracket name. Matching is case insensitive.
func ParseBracket(s string) (Bracket, error) {
	b := Bracket(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("%w: %q, must be one of %v", ErrUnknownBracket, s, Brackets())
	}

	return b, nil
}

// ForIncome returns the bracket for an annual income.
func ForIncome(annual decimal.Decimal) Bracket {
	switch {
	case annual.LessThan(lowUpperBound):
		return BracketLow
	case annual.LessThan(mediumUpperBound):
		return BracketMedium
	default:
		return BracketHigh
	}
}

// Valid reports whether b is one of the supported brackets.
func (b Bracket) Valid() bool {
	for _, known := range Brackets() {
		if b == known {
			return true
		}
	}
	return false
}

// Index returns the position of the bracket in the ascending order, -1 for
// unknown brackets.
func (b Bracket) Index() int {
	for i, known := range Brackets() {
		if b == known {
			return i
		}
	}
	return -1
}

func (b Bracket) String() string {
	return string(b)
}
