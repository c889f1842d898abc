package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerlens/backend/internal/ledger"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// Generator generates content with a generative model. *genai.Models
// implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClassifier asks a Gemini model to pick one of the candidate labels.
type GeminiClassifier struct {
	generator Generator
	model     string
	labels    []string
	breaker   *Breaker
}

// NewGeminiClient creates a client for the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return client, nil
}

func NewGeminiClassifier(generator Generator, model string, labels []string) *GeminiClassifier {
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiClassifier{
		generator: generator,
		model:     model,
		labels:    labels,
		breaker:   NewBreaker(DefaultBreakerConfig()),
	}
}

// WithLabels returns a copy of the classifier for the candidate labels.
func (g *GeminiClassifier) WithLabels(labels []string) Classifier {
	c := *g
	c.labels = append([]string(nil), labels...)
	return &c
}

func (g *GeminiClassifier) prompt(t ledger.Transaction) string {
	direction := "money spent"
	if t.IsIncome() {
		direction = "money received"
	}

	return "You categorize bank transactions.\n\n" +
		"Pick exactly one category for the transaction below from this list:\n" +
		"- " + strings.Join(g.labels, "\n- ") + "\n\n" +
		fmt.Sprintf("Transaction: %q (%s)\n\n", t.Description, direction) +
		"Answer with the category name only, without punctuation or explanation."
}

// Classify asks the model for the category. The answer must be one of the
// candidate labels.
func (g *GeminiClassifier) Classify(ctx context.Context, t ledger.Transaction) (Classification, error) {
	if !g.breaker.Allow() {
		return Classification{}, ErrCircuitOpen
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: g.prompt(t)}},
		},
	}

	resp, err := g.generator.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		if ctx.Err() == nil {
			g.breaker.Failure()
		}
		return Classification{}, fmt.Errorf("gemini request failed: %w", err)
	}
	g.breaker.Success()

	answer := strings.Trim(strings.TrimSpace(resp.Text()), ".\"'`")
	if answer == "" {
		return Classification{}, ErrNoLabels
	}

	for _, label := range g.labels {
		if strings.EqualFold(label, answer) {
			return Classification{
				Category:   label,
				Confidence: 1,
				Source:     SourceModel,
			}, nil
		}
	}

	return Classification{}, fmt.Errorf("%w: %q", ErrUnknownLabel, answer)
}
