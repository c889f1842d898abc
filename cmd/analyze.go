package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/ledgerlens/backend/internal/config"
	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/internal/importer"
	"github.com/ledgerlens/backend/internal/insights"
	"github.com/ledgerlens/backend/internal/models"
	"github.com/ledgerlens/backend/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagBracket   string
	flagIncome    string
	flagGoal      string
	flagThreshold string
	flagCurrency  string
	flagJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Analyze a statement and print the report",
	Long: `Analyze a statement without starting the server.

The rules and benchmark profiles are read from the database if it exists,
otherwise from the reference data file or the built-in defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagBracket, "bracket", "b", "", fmt.Sprintf("Income bracket to compare with, one of %v", benchmark.Brackets()))
	analyzeCmd.Flags().StringVarP(&flagIncome, "income", "i", "", "Annual income, selects the bracket if --bracket is not set")
	analyzeCmd.Flags().StringVarP(&flagGoal, "goal", "g", "", "Savings goal for the statement period")
	analyzeCmd.Flags().StringVarP(&flagThreshold, "threshold", "t", "", "Recommendation threshold in percentage points (default RECOMMENDATION_THRESHOLD)")
	analyzeCmd.Flags().StringVar(&flagCurrency, "currency", "", "ISO 4217 currency of the statement (default CURRENCY)")
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the analysis as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagEnvFiles...)
	if err != nil {
		return err
	}

	filter := v1.AnalysisQueryFilter{
		Bracket:     flagBracket,
		Income:      flagIncome,
		SavingsGoal: flagGoal,
		Threshold:   flagThreshold,
	}

	options, threshold, err := filter.Options()
	if err != nil {
		return err
	}

	if !threshold.IsPositive() {
		threshold = cfg.Threshold
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := importer.Parse(f, importer.Options{})
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	data, err := referenceData(cfg)
	if err != nil {
		return err
	}

	rules := categorizer.NewRuleClassifier(data.Rules)
	primary, err := cfg.PrimaryClassifier(cmd.Context(), rules.Labels())
	if err != nil {
		return fmt.Errorf("creating the %s classifier: %w", cfg.Classifier.Kind, err)
	}

	cat := categorizer.New(categorizer.Options{
		Primary:       primary,
		Rules:         rules,
		Timeout:       cfg.Classifier.Timeout,
		MinConfidence: cfg.Classifier.MinConfidence,
	})

	transactions := cat.Categorize(cmd.Context(), result.Transactions)
	summary := insights.New(threshold, data.Benchmarks).Analyze(transactions, options)

	if flagJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(v1.NewAnalysis(result, transactions, summary))
	}

	currency := cfg.Currency
	if flagCurrency != "" {
		currency = flagCurrency
	}

	out, err := report.Render(summary, report.Options{Currency: currency, Import: &result})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// referenceData returns the rules and benchmark profiles for an offline
// analysis.
func referenceData(cfg config.Config) (models.ReferenceData, error) {
	_, err := os.Stat(cfg.DBPath)
	if err == nil {
		if err := models.Connect(cfg.DBPath); err != nil {
			return models.ReferenceData{}, err
		}

		rules, err := models.Rules(models.DB)
		if err != nil {
			return models.ReferenceData{}, err
		}

		set, err := models.Benchmarks(models.DB)
		if err != nil {
			return models.ReferenceData{}, err
		}

		log.Debug().Str("path", cfg.DBPath).Msg("Using reference data from the database")
		return models.ReferenceData{Rules: rules, Benchmarks: set}, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return models.ReferenceData{}, err
	}

	if cfg.ReferenceData != "" {
		data, err := config.LoadReferenceData(cfg.ReferenceData)
		if err != nil {
			return models.ReferenceData{}, err
		}

		// Brackets missing in the file keep the built-in profile
		defaults := models.Defaults()
		if len(data.Rules) == 0 {
			data.Rules = defaults.Rules
		}
		profiles := defaults.Benchmarks.Profiles()
		data.Benchmarks = benchmark.NewSet(append(profiles, data.Benchmarks.Profiles()...)...)

		return data, nil
	}

	return models.Defaults(), nil
}
