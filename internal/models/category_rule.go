package models

import (
	"strings"

	"github.com/ledgerlens/backend/internal/categorizer"
	"gorm.io/gorm"
)

// CategoryRule maps transaction descriptions to a category.
type CategoryRule struct {
	DefaultModel
	Priority uint
	Category string
	Match    string
	Sign     categorizer.Sign
	Note     string
}

func (r CategoryRule) Self() string {
	return "Category Rule"
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Category = strings.TrimSpace(r.Category)
	r.Match = strings.TrimSpace(r.Match)
	r.Note = strings.TrimSpace(r.Note)

	if r.Sign == "" {
		r.Sign = categorizer.SignAny
	}

	return r.Validate()
}

// Validate checks that the rule can be evaluated.
func (r CategoryRule) Validate() error {
	if strings.TrimSpace(r.Match) == "" {
		return ErrCategoryRuleMatchEmpty
	}

	if strings.TrimSpace(r.Category) == "" {
		return ErrCategoryRuleCategoryEmpty
	}

	if !r.Sign.Valid() {
		return ErrCategoryRuleSignInvalid
	}

	return nil
}

// Rule converts the model to the rule the categorizer evaluates.
func (r CategoryRule) Rule() categorizer.Rule {
	return categorizer.Rule{
		Priority: r.Priority,
		Category: r.Category,
		Match:    r.Match,
		Sign:     r.Sign,
	}
}

// Rules returns a snapshot of all category rules in evaluation order.
func Rules(db *gorm.DB) ([]categorizer.Rule, error) {
	var models []CategoryRule
	err := db.Order("priority ASC, match ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	rules := make([]categorizer.Rule, 0, len(models))
	for _, m := range models {
		rules = append(rules, m.Rule())
	}

	return rules, nil
}
