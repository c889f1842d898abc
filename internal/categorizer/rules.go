package categorizer

import (
	"context"
	"sort"
	"strings"

	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
)

// Sign restricts a rule to expenses or income.
type Sign string

const (
	SignAny     Sign = "any"
	SignExpense Sign = "expense"
	SignIncome  Sign = "income"
)

// Valid reports whether the sign is known. The empty sign is treated as SignAny.
func (s Sign) Valid() bool {
	switch s {
	case "", SignAny, SignExpense, SignIncome:
		return true
	}
	return false
}

func (s Sign) allows(t ledger.Transaction) bool {
	switch s {
	case SignExpense:
		return t.IsExpense()
	case SignIncome:
		return t.IsIncome()
	}
	return true
}

// Rule maps descriptions to a category.
//
// Match is a keyword that must be contained in the description. If it
// contains a "*", it is a glob pattern that must match the whole description.
// Matching is case insensitive in both cases.
type Rule struct {
	Priority uint
	Category string
	Match    string
	Sign     Sign
}

// RuleClassifier classifies transactions with a fixed rule table.
type RuleClassifier struct {
	rules []Rule
}

// NewRuleClassifier creates a classifier for a snapshot of the rules.
//
// Rules are evaluated by ascending priority, rules with the same priority
// by their match. The first rule that matches wins.
func NewRuleClassifier(rules []Rule) *RuleClassifier {
	fold := cases.Fold()

	sorted := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if strings.TrimSpace(r.Match) == "" || r.Category == "" {
			continue
		}

		r.Match = fold.String(strings.TrimSpace(r.Match))
		sorted = append(sorted, r)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Match < sorted[j].Match
	})

	return &RuleClassifier{rules: sorted}
}

// Classify returns the category of the first matching rule.
func (r *RuleClassifier) Classify(_ context.Context, t ledger.Transaction) (Classification, error) {
	rule, ok := r.Match(t)
	if !ok {
		return Classification{}, nil
	}

	return Classification{
		Category:   rule.Category,
		Confidence: 1,
		Source:     SourceRules,
	}, nil
}

// Match returns the first rule matching the transaction.
func (r *RuleClassifier) Match(t ledger.Transaction) (Rule, bool) {
	// Casers are stateful, a new one is needed for every call
	description := cases.Fold().String(t.Description)

	for _, rule := range r.rules {
		if !rule.Sign.allows(t) {
			continue
		}

		if strings.Contains(rule.Match, "*") {
			if glob.Glob(rule.Match, description) {
				return rule, true
			}
			continue
		}

		if strings.Contains(description, rule.Match) {
			return rule, true
		}
	}

	return Rule{}, false
}

// Labels returns the distinct categories of the rule table in rule order.
func (r *RuleClassifier) Labels() []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)

	for _, rule := range r.rules {
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		seen[rule.Category] = struct{}{}
		labels = append(labels, rule.Category)
	}

	return labels
}

// Len returns the number of usable rules.
func (r *RuleClassifier) Len() int {
	return len(r.rules)
}
