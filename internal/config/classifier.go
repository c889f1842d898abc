package config

import (
	"context"
	"net/http"

	"github.com/ledgerlens/backend/internal/categorizer"
)

// PrimaryClassifier creates the classifier that is consulted before the
// rules. For the rules classifier it returns nil.
func (c Config) PrimaryClassifier(ctx context.Context, labels []string) (categorizer.Classifier, error) {
	switch c.Classifier.Kind {
	case ClassifierHTTP:
		return categorizer.NewHTTPClassifier(categorizer.HTTPConfig{
			URL:     c.Classifier.URL,
			Token:   c.Classifier.Token,
			Labels:  labels,
			RPS:     c.Classifier.RPS,
			Breaker: categorizer.DefaultBreakerConfig(),
			Client:  &http.Client{Timeout: c.Classifier.Timeout},
		}), nil

	case ClassifierGemini:
		client, err := categorizer.NewGeminiClient(ctx, c.Classifier.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return categorizer.NewGeminiClassifier(client.Models, c.Classifier.GeminiModel, labels), nil
	}

	return nil, nil
}
