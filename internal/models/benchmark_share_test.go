package models_test

import (
	"testing"

	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/ledgerlens/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBenchmarksSeeded() {
	set, err := models.Benchmarks(models.DB)
	suite.Require().Nil(err)

	assert.Equal(suite.T(), 3, set.Len())

	p, ok := set.Profile(benchmark.BracketHigh)
	suite.Require().True(ok)
	assert.True(suite.T(), p.Shares["Entertainment"].Equal(decimal.NewFromInt(12)))
}

func (suite *TestSuiteStandard) TestBenchmarkShareValidation() {
	tests := []struct {
		name  string
		share models.BenchmarkShare
		err   error
	}{
		{"Unknown bracket", models.BenchmarkShare{Bracket: "rich", Category: "Food", Share: decimal.NewFromInt(10)}, models.ErrBenchmarkShareBracket},
		{"Negative", models.BenchmarkShare{Bracket: benchmark.BracketLow, Category: "Pets", Share: decimal.NewFromInt(-1)}, models.ErrBenchmarkShareOutOfBounds},
		{"Too large", models.BenchmarkShare{Bracket: benchmark.BracketLow, Category: "Pets", Share: decimal.NewFromInt(101)}, models.ErrBenchmarkShareOutOfBounds},
		{"Duplicate", models.BenchmarkShare{Bracket: benchmark.BracketLow, Category: "Food", Share: decimal.NewFromInt(10)}, models.ErrBenchmarkShareNotUnique},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.share).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestReplace() {
	err := models.Replace(models.DB, models.ReferenceData{
		Rules: []categorizer.Rule{{Priority: 1, Category: "Pets", Match: "petco"}},
		Benchmarks: benchmark.NewSet(benchmark.Profile{
			Bracket: benchmark.BracketLow,
			Shares:  map[string]decimal.Decimal{"Housing": decimal.NewFromInt(60), "Food": decimal.NewFromInt(40)},
		}),
	})
	suite.Require().Nil(err)

	rules, err := models.Rules(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(rules, 1)
	assert.Equal(suite.T(), "Pets", rules[0].Category)
	assert.Equal(suite.T(), categorizer.SignAny, rules[0].Sign)

	set, err := models.Benchmarks(models.DB)
	suite.Require().Nil(err)

	low, _ := set.Profile(benchmark.BracketLow)
	assert.Len(suite.T(), low.Shares, 2)

	// Brackets not in the replacement are kept
	medium, ok := set.Profile(benchmark.BracketMedium)
	suite.Require().True(ok)
	assert.Len(suite.T(), medium.Shares, 8)
}

// TestSeedKeepsExisting verifies that seeding does not touch tables with data.
func (suite *TestSuiteStandard) TestSeedKeepsExisting() {
	suite.Require().Nil(models.Replace(models.DB, models.ReferenceData{
		Rules: []categorizer.Rule{{Priority: 1, Category: "Pets", Match: "petco"}},
	}))

	suite.Require().Nil(models.Seed(models.DB, models.Defaults()))

	rules, err := models.Rules(models.DB)
	suite.Require().Nil(err)
	assert.Len(suite.T(), rules, 1)
}
