package models

import (
	"strings"

	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BenchmarkShare is the share of spending that a typical household in an
// income bracket spends on a category.
type BenchmarkShare struct {
	DefaultModel
	Bracket  benchmark.Bracket `gorm:"uniqueIndex:share_bracket_category"`
	Category string            `gorm:"uniqueIndex:share_bracket_category"`
	Share    decimal.Decimal   `gorm:"type:DECIMAL(20,8)"` // In percent
}

func (s *BenchmarkShare) BeforeSave(_ *gorm.DB) error {
	s.Category = strings.TrimSpace(s.Category)

	if !s.Bracket.Valid() {
		return ErrBenchmarkShareBracket
	}

	if s.Share.IsNegative() || s.Share.GreaterThan(decimal.NewFromInt(100)) {
		return ErrBenchmarkShareOutOfBounds
	}

	return nil
}

// Benchmarks returns the benchmark profiles stored in the database.
func Benchmarks(db *gorm.DB) (benchmark.Set, error) {
	var shares []BenchmarkShare
	err := db.Order("bracket ASC, category ASC").Find(&shares).Error
	if err != nil {
		return benchmark.Set{}, err
	}

	profiles := make(map[benchmark.Bracket]benchmark.Profile)
	for _, s := range shares {
		p, ok := profiles[s.Bracket]
		if !ok {
			p = benchmark.Profile{Bracket: s.Bracket, Shares: make(map[string]decimal.Decimal)}
			profiles[s.Bracket] = p
		}
		p.Shares[s.Category] = s.Share
	}

	list := make([]benchmark.Profile, 0, len(profiles))
	for _, p := range profiles {
		list = append(list, p)
	}

	return benchmark.NewSet(list...), nil
}
