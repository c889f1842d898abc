// Package categorizer assigns a spending category to every transaction.
//
// A Categorizer consults an optional primary Classifier first, e.g. a remote
// zero-shot model, and falls back to the deterministic rule table. Every
// transaction leaves the Categorizer with exactly one category.
package categorizer

import (
	"context"
	"errors"

	"github.com/ledgerlens/backend/internal/ledger"
)

// Source describes where a category came from.
type Source string

const (
	SourceInput    Source = "input"    // The statement already contained the category
	SourceModel    Source = "model"    // The primary classifier picked the category
	SourceRules    Source = "rules"    // A category rule matched
	SourceFallback Source = "fallback" // Nothing matched
)

var (
	ErrCircuitOpen  = errors.New("the classifier is unavailable, too many requests failed")
	ErrUnknownLabel = errors.New("the classifier returned a label that is not a candidate")
	ErrNoLabels     = errors.New("the classifier did not return any label")
)

// Classification is the outcome of classifying a single transaction.
type Classification struct {
	Category   string  `json:"category" example:"Food"`
	Confidence float64 `json:"confidence" example:"0.87"` // Between 0 and 1
	Source     Source  `json:"source" example:"rules"`
}

// Matched reports whether the classification carries a category.
func (c Classification) Matched() bool {
	return c.Category != ""
}

// Classifier classifies a single transaction.
//
// An empty Classification with a nil error means that the classifier
// has no opinion on the transaction.
type Classifier interface {
	Classify(ctx context.Context, transaction ledger.Transaction) (Classification, error)
}

// Labeled is implemented by classifiers that pick from a list of candidate
// labels. WithLabels returns a classifier for other candidates that shares
// rate limits and circuit breaker with the original.
type Labeled interface {
	Classifier
	WithLabels(labels []string) Classifier
}
