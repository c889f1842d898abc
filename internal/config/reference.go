package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/categorizer"
	"github.com/ledgerlens/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ReferenceFile is the TOML file format for reference data.
//
//	[[rules]]
//	priority = 10
//	category = "Food"
//	match = "restaurant"
//	sign = "expense"
//
//	[benchmarks.under-50k]
//	Housing = 35
//	Food = 15
type ReferenceFile struct {
	Rules      []RuleEntry                   `toml:"rules" validate:"dive"`
	Benchmarks map[string]map[string]float64 `toml:"benchmarks" validate:"dive,keys,bracket,endkeys,dive,gte=0,lte=100"`
}

type RuleEntry struct {
	Priority uint   `toml:"priority"`
	Category string `toml:"category" validate:"required"`
	Match    string `toml:"match" validate:"required"`
	Sign     string `toml:"sign" validate:"omitempty,sign"`
}

// LoadReferenceData reads and validates a reference data file.
//
// Sections that are absent from the file stay empty, so that the caller
// only replaces what the file defines.
func LoadReferenceData(path string) (models.ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ReferenceData{}, fmt.Errorf("reading reference data: %w", err)
	}

	var file ReferenceFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return models.ReferenceData{}, fmt.Errorf("parsing reference data: %w", err)
	}

	return file.ReferenceData()
}

// ReferenceData validates the file and converts it.
func (f ReferenceFile) ReferenceData() (models.ReferenceData, error) {
	if err := Validator().Struct(f); err != nil {
		return models.ReferenceData{}, fmt.Errorf("invalid reference data: %w", err)
	}

	rules := make([]categorizer.Rule, 0, len(f.Rules))
	for _, r := range f.Rules {
		rules = append(rules, categorizer.Rule{
			Priority: r.Priority,
			Category: r.Category,
			Match:    r.Match,
			Sign:     categorizer.Sign(r.Sign),
		})
	}

	profiles := make([]benchmark.Profile, 0, len(f.Benchmarks))
	for name, shares := range f.Benchmarks {
		bracket, _ := benchmark.ParseBracket(name)

		profile := benchmark.Profile{
			Bracket: bracket,
			Shares:  make(map[string]decimal.Decimal, len(shares)),
		}
		for category, share := range shares {
			profile.Shares[category] = decimal.NewFromFloat(share)
		}
		profiles = append(profiles, profile)
	}

	return models.ReferenceData{
		Rules:      rules,
		Benchmarks: benchmark.NewSet(profiles...),
	}, nil
}
