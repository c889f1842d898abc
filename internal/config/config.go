// Package config reads the service configuration from the environment and
// the optional reference data file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Classifier kinds.
const (
	ClassifierRules  = "rules"
	ClassifierHTTP   = "http"
	ClassifierGemini = "gemini"
)

type Config struct {
	Port   string `validate:"required,number"`
	APIURL string `validate:"required,url"`

	// DBPath is the SQLite file holding the reference data.
	DBPath string `validate:"required"`

	// ReferenceData is an optional TOML file that replaces the built-in
	// rules and benchmark profiles on start.
	ReferenceData string `validate:"omitempty,file"`

	MaxUploadBytes int64  `validate:"gt=0"`
	Currency       string `validate:"required,iso4217"`

	// Threshold is the default recommendation threshold in percentage points.
	Threshold decimal.Decimal

	Classifier ClassifierConfig
}

type ClassifierConfig struct {
	Kind          string        `validate:"oneof=rules http gemini"`
	URL           string        `validate:"required_if=Kind http,omitempty,url"`
	Token         string        `validate:"-"`
	Timeout       time.Duration `validate:"gt=0"`
	MinConfidence float64       `validate:"gte=0,lte=1"`
	RPS           float64       `validate:"gte=0"`
	GeminiAPIKey  string        `validate:"required_if=Kind gemini"`
	GeminiModel   string
}

// Load reads the configuration from the environment. Variables from the
// .env files are loaded first, missing files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	port := getEnv("PORT", "8080")
	threshold, err := decimal.NewFromString(getEnv("RECOMMENDATION_THRESHOLD", "5"))
	if err != nil {
		return Config{}, fmt.Errorf("RECOMMENDATION_THRESHOLD must be a number: %w", err)
	}

	cfg := Config{
		Port:           port,
		APIURL:         getEnv("API_URL", fmt.Sprintf("http://localhost:%s", port)),
		DBPath:         getEnv("DB_PATH", "data/ledgerlens.db"),
		ReferenceData:  getEnv("REFERENCE_DATA", ""),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		Currency:       strings.ToUpper(getEnv("CURRENCY", "USD")),
		Threshold:      threshold,
		Classifier: ClassifierConfig{
			Kind:          strings.ToLower(getEnv("CLASSIFIER", ClassifierRules)),
			URL:           getEnv("CLASSIFIER_URL", ""),
			Token:         getEnv("CLASSIFIER_TOKEN", ""),
			Timeout:       getEnvDuration("CLASSIFIER_TIMEOUT", 5*time.Second),
			MinConfidence: getEnvFloat("CLASSIFIER_MIN_CONFIDENCE", 0.3),
			RPS:           getEnvFloat("CLASSIFIER_RPS", 0),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", ""),
		},
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration and reports every invalid field.
func (c Config) Validate() error {
	err := Validator().Struct(c)
	if err == nil {
		if !c.Threshold.IsPositive() {
			return errors.New("invalid configuration: RECOMMENDATION_THRESHOLD must be positive")
		}
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, ValidationErrorToText(e))
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Warn().Str("variable", key).Str("value", value).Msg("not an integer, using the default")
		return fallback
	}
	return i
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn().Str("variable", key).Str("value", value).Msg("not a number, using the default")
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("variable", key).Str("value", value).Msg("not a duration, using the default")
		return fallback
	}
	return d
}
