package models

import (
	"fmt"

	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReferenceData is the configuration the analysis works with.
type ReferenceData struct {
	Rules      []categorizer.Rule
	Benchmarks benchmark.Set
}

// Defaults returns the built-in reference data.
func Defaults() ReferenceData {
	return ReferenceData{
		Rules:      categorizer.DefaultRules(),
		Benchmarks: benchmark.Defaults(),
	}
}

func ruleModels(rules []categorizer.Rule) []CategoryRule {
	models := make([]CategoryRule, 0, len(rules))
	for _, r := range rules {
		models = append(models, CategoryRule{
			Priority: r.Priority,
			Category: r.Category,
			Match:    r.Match,
			Sign:     r.Sign,
		})
	}
	return models
}

func shareModels(set benchmark.Set) []BenchmarkShare {
	models := make([]BenchmarkShare, 0)
	for _, p := range set.Profiles() {
		for _, category := range p.Categories() {
			share, _ := p.Share(category)
			models = append(models, BenchmarkShare{
				Bracket:  p.Bracket,
				Category: category,
				Share:    share,
			})
		}
	}
	return models
}

// Seed inserts the reference data into tables that are empty.
func Seed(db *gorm.DB, data ReferenceData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CategoryRule{}).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 && len(data.Rules) > 0 {
			if err := tx.Create(ruleModels(data.Rules)).Error; err != nil {
				return fmt.Errorf("seeding category rules: %w", err)
			}
			log.Debug().Int("count", len(data.Rules)).Msg("Seeded category rules")
		}

		if err := tx.Model(&BenchmarkShare{}).Count(&count).Error; err != nil {
			return err
		}

		shares := shareModels(data.Benchmarks)
		if count == 0 && len(shares) > 0 {
			if err := tx.Create(shares).Error; err != nil {
				return fmt.Errorf("seeding benchmark shares: %w", err)
			}
			log.Debug().Int("count", len(shares)).Msg("Seeded benchmark shares")
		}

		return nil
	})
}

// Replace replaces all reference data. Rules are only replaced if data
// contains rules, benchmark shares only for the brackets that data contains.
func Replace(db *gorm.DB, data ReferenceData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if len(data.Rules) > 0 {
			if err := tx.Unscoped().Where("1 = 1").Delete(&CategoryRule{}).Error; err != nil {
				return err
			}

			if err := tx.Create(ruleModels(data.Rules)).Error; err != nil {
				return fmt.Errorf("replacing category rules: %w", err)
			}
		}

		for _, p := range data.Benchmarks.Profiles() {
			if err := tx.Unscoped().Where("bracket = ?", p.Bracket).Delete(&BenchmarkShare{}).Error; err != nil {
				return err
			}
		}

		if shares := shareModels(data.Benchmarks); len(shares) > 0 {
			if err := tx.Create(shares).Error; err != nil {
				return fmt.Errorf("replacing benchmark shares: %w", err)
			}
		}

		return nil
	})
}
