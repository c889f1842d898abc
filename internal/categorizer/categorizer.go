package categorizer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Defaults for Options.
const (
	DefaultTimeout = 5 * time.Second
	DefaultWorkers = 8
)

// Options configures a Categorizer.
type Options struct {
	// Primary is consulted before the rules. Optional.
	Primary Classifier

	// Rules is the fallback for the primary classifier.
	Rules *RuleClassifier

	// Timeout bounds a single call to the primary classifier.
	Timeout time.Duration

	// Results of the primary classifier below MinConfidence are ignored.
	MinConfidence float64

	// Workers is the maximum number of transactions classified concurrently.
	Workers int
}

// Categorizer assigns categories to transactions. It holds no mutable state
// and can be shared between requests.
type Categorizer struct {
	primary       Classifier
	rules         *RuleClassifier
	timeout       time.Duration
	minConfidence float64
	workers       int
}

// Result is a transaction with the classification it received.
type Result struct {
	Transaction    ledger.Transaction `json:"transaction"`
	Classification Classification     `json:"classification"`
}

func New(opts Options) *Categorizer {
	if opts.Rules == nil {
		opts.Rules = NewRuleClassifier(DefaultRules())
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	// The candidates always are the categories of the current rules
	if labeled, ok := opts.Primary.(Labeled); ok {
		opts.Primary = labeled.WithLabels(opts.Rules.Labels())
	}

	return &Categorizer{
		primary:       opts.Primary,
		rules:         opts.Rules,
		timeout:       opts.Timeout,
		minConfidence: opts.MinConfidence,
		workers:       opts.Workers,
	}
}

// Categorize returns a copy of the transactions where every transaction has
// a category. Categories that are already set are kept, so categorizing the
// result again does not change it.
func (c *Categorizer) Categorize(ctx context.Context, transactions []ledger.Transaction) []ledger.Transaction {
	results := c.Explain(ctx, transactions)

	out := make([]ledger.Transaction, len(results))
	for i, r := range results {
		out[i] = r.Transaction
	}

	return out
}

// Explain categorizes the transactions and returns where each category came from.
// The order of the input is kept.
func (c *Categorizer) Explain(ctx context.Context, transactions []ledger.Transaction) []Result {
	results := make([]Result, len(transactions))

	g := new(errgroup.Group)
	g.SetLimit(c.workers)

	for i, t := range transactions {
		g.Go(func() error {
			cls := c.classify(ctx, t)
			t.Category = cls.Category
			results[i] = Result{Transaction: t, Classification: cls}

			classifications.WithLabelValues(string(cls.Source)).Inc()
			return nil
		})
	}

	// Workers never return errors, failures degrade to the next classifier
	_ = g.Wait()

	return results
}

// classify runs the chain of classifiers for a single transaction.
func (c *Categorizer) classify(ctx context.Context, t ledger.Transaction) Classification {
	if category := strings.TrimSpace(t.Category); category != "" {
		return Classification{Category: category, Confidence: 1, Source: SourceInput}
	}

	if c.primary != nil {
		if cls, ok := c.classifyPrimary(ctx, t); ok {
			return cls
		}
	}

	cls, err := c.rules.Classify(ctx, t)
	if err == nil && cls.Matched() {
		return cls
	}

	return Classification{Category: ledger.Uncategorized, Source: SourceFallback}
}

func (c *Categorizer) classifyPrimary(ctx context.Context, t ledger.Transaction) (Classification, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cls, err := c.primary.Classify(ctx, t)
	if err != nil {
		reason := "error"
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			reason = "timeout"
		case errors.Is(err, ErrCircuitOpen):
			reason = "circuit_open"
		case errors.Is(err, ErrUnknownLabel):
			reason = "unknown_label"
		}
		classifierErrors.WithLabelValues(reason).Inc()

		log.Debug().Err(err).Int("line", t.Line).Str("reason", reason).Msg("Classifier failed, falling back to rules")
		return Classification{}, false
	}

	if !cls.Matched() || cls.Confidence < c.minConfidence {
		classifierErrors.WithLabelValues("low_confidence").Inc()
		return Classification{}, false
	}

	if cls.Source == "" {
		cls.Source = SourceModel
	}

	return cls, true
}

// Labels returns the candidate categories known to the rules.
func (c *Categorizer) Labels() []string {
	return c.rules.Labels()
}
