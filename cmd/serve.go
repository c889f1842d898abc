package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ledgerlens/backend/internal/config"
	v1 "github.com/ledgerlens/backend/internal/controllers/v1"
	"github.com/ledgerlens/backend/internal/models"
	"github.com/ledgerlens/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagEnvFiles...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = connect(cfg)
	if err != nil {
		return err
	}

	co, err := controller(ctx, cfg)
	if err != nil {
		return err
	}

	apiURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("API_URL is not a valid URL: %w", err)
	}

	r, teardown, err := router.Config(apiURL)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(co, r.Group(apiURL.Path))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("classifier", cfg.Classifier.Kind).Msg("Starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// connect opens the reference data store and applies the reference data file.
func connect(cfg config.Config) error {
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return err
	}

	err = models.Connect(cfg.DBPath)
	if err != nil {
		return err
	}

	if cfg.ReferenceData == "" {
		return nil
	}

	data, err := config.LoadReferenceData(cfg.ReferenceData)
	if err != nil {
		return err
	}

	err = models.Replace(models.DB, data)
	if err != nil {
		return fmt.Errorf("applying %s: %w", cfg.ReferenceData, err)
	}

	log.Info().Str("file", cfg.ReferenceData).Int("rules", len(data.Rules)).Int("profiles", data.Benchmarks.Len()).Msg("Reference data applied")
	return nil
}

// controller creates the controller for the configuration. The candidate
// labels of the primary classifier are set for every request from the stored
// rules, so rules created through the API are picked up without a restart.
func controller(ctx context.Context, cfg config.Config) (v1.Controller, error) {
	primary, err := cfg.PrimaryClassifier(ctx, nil)
	if err != nil {
		return v1.Controller{}, fmt.Errorf("creating the %s classifier: %w", cfg.Classifier.Kind, err)
	}

	return v1.Controller{
		Primary:           primary,
		ClassifierTimeout: cfg.Classifier.Timeout,
		MinConfidence:     cfg.Classifier.MinConfidence,
		Threshold:         cfg.Threshold,
		MaxUploadBytes:    cfg.MaxUploadBytes,
	}, nil
}
