package models_test

import (
	"testing"

	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/ledgerlens/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryRuleSelf() {
	assert.Equal(suite.T(), "Category Rule", models.CategoryRule{}.Self())
}

func (suite *TestSuiteStandard) TestCategoryRuleBeforeSave() {
	tests := []struct {
		name string
		rule models.CategoryRule
		err  error
	}{
		{"Valid", models.CategoryRule{Category: "Food", Match: "bakery"}, nil},
		{"Empty match", models.CategoryRule{Category: "Food", Match: "  "}, models.ErrCategoryRuleMatchEmpty},
		{"Empty category", models.CategoryRule{Match: "bakery"}, models.ErrCategoryRuleCategoryEmpty},
		{"Invalid sign", models.CategoryRule{Category: "Food", Match: "bakery", Sign: "sometimes"}, models.ErrCategoryRuleSignInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.rule).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRuleTrimWhitespace() {
	rule := models.CategoryRule{Category: " Food\t", Match: "  bakery ", Note: " fresh "}
	suite.Require().Nil(models.DB.Create(&rule).Error)

	var stored models.CategoryRule
	suite.Require().Nil(models.DB.First(&stored, "id = ?", rule.ID).Error)

	assert.Equal(suite.T(), "Food", stored.Category)
	assert.Equal(suite.T(), "bakery", stored.Match)
	assert.Equal(suite.T(), "fresh", stored.Note)
	assert.Equal(suite.T(), categorizer.SignAny, stored.Sign)
}

// TestRulesSeeded verifies that a new database contains the built-in rules in
// evaluation order.
func (suite *TestSuiteStandard) TestRulesSeeded() {
	rules, err := models.Rules(models.DB)
	suite.Require().Nil(err)

	assert.Len(suite.T(), rules, len(categorizer.DefaultRules()))
	for i := 1; i < len(rules); i++ {
		assert.LessOrEqual(suite.T(), rules[i-1].Priority, rules[i].Priority)
	}

	classifier := categorizer.NewRuleClassifier(rules)
	assert.Equal(suite.T(), "Housing", classifier.Labels()[0])
}

func (suite *TestSuiteStandard) TestRuleNotFound() {
	err := models.DB.First(&models.CategoryRule{}, "id = ?", "00000000-0000-0000-0000-000000000000").Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category rule matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	_, err := models.Rules(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
