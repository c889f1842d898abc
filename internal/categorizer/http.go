package categorizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/time/rate"
)

// HTTPConfig configures a HTTPClassifier.
type HTTPConfig struct {
	URL     string   // Inference endpoint
	Token   string   // Bearer token, optional
	Labels  []string // Candidate categories
	RPS     float64  // Maximum requests per second, 0 means unlimited
	Breaker BreakerConfig
	Client  *http.Client
}

// HTTPClassifier classifies transactions with a zero-shot text classification
// model served over HTTP.
type HTTPClassifier struct {
	url     string
	token   string
	labels  []string
	client  *http.Client
	limiter *rate.Limiter
	breaker *Breaker
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

type zeroShotScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func NewHTTPClassifier(config HTTPConfig) *HTTPClassifier {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RPS), max(1, int(config.RPS)))
	}

	client := config.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	if config.Breaker == (BreakerConfig{}) {
		config.Breaker = DefaultBreakerConfig()
	}

	return &HTTPClassifier{
		url:     config.URL,
		token:   config.Token,
		labels:  config.Labels,
		client:  client,
		limiter: limiter,
		breaker: NewBreaker(config.Breaker),
	}
}

// Breaker returns the circuit breaker guarding the endpoint.
func (h *HTTPClassifier) Breaker() *Breaker {
	return h.breaker
}

// WithLabels returns a copy of the classifier for the candidate labels.
func (h *HTTPClassifier) WithLabels(labels []string) Classifier {
	c := *h
	c.labels = slices.Clone(labels)
	return &c
}

// Classify sends the description to the model and returns the label with the
// highest score.
func (h *HTTPClassifier) Classify(ctx context.Context, t ledger.Transaction) (Classification, error) {
	if !h.breaker.Allow() {
		return Classification{}, ErrCircuitOpen
	}

	if err := h.limiter.Wait(ctx); err != nil {
		return Classification{}, fmt.Errorf("rate limit: %w", err)
	}

	label, score, err := h.request(ctx, t.Description)
	if err != nil {
		// Cancellation by the caller says nothing about the health of the endpoint
		if ctx.Err() == nil {
			h.breaker.Failure()
		}
		return Classification{}, err
	}
	h.breaker.Success()

	if len(h.labels) > 0 && !slices.Contains(h.labels, label) {
		return Classification{}, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	return Classification{
		Category:   label,
		Confidence: score,
		Source:     SourceModel,
	}, nil
}

func (h *HTTPClassifier) request(ctx context.Context, description string) (string, float64, error) {
	body, err := json.Marshal(zeroShotRequest{
		Inputs:     description,
		Parameters: zeroShotParameters{CandidateLabels: h.labels},
	})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", 0, fmt.Errorf("reading classifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Bytes("body", data).Msg("Classifier")
		return "", 0, fmt.Errorf("classifier responded with status %d", resp.StatusCode)
	}

	return parseZeroShot(data)
}

// parseZeroShot reads both the labels/scores object and the list of
// label/score pairs that newer inference servers return.
func parseZeroShot(data []byte) (string, float64, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var scores []zeroShotScore
		if err := json.Unmarshal(data, &scores); err != nil {
			return "", 0, fmt.Errorf("decoding classifier response: %w", err)
		}
		if len(scores) == 0 {
			return "", 0, ErrNoLabels
		}

		best := scores[0]
		for _, s := range scores[1:] {
			if s.Score > best.Score {
				best = s
			}
		}
		return best.Label, best.Score, nil
	}

	var r zeroShotResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return "", 0, fmt.Errorf("decoding classifier response: %w", err)
	}

	if len(r.Labels) == 0 || len(r.Scores) == 0 {
		return "", 0, ErrNoLabels
	}

	// Labels are sorted by descending score
	return r.Labels[0], r.Scores[0], nil
}
