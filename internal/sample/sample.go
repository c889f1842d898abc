// Package sample generates realistic bank statements for demos and tests.
package sample

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

const (
	DefaultMonths = 6
	MaxMonths     = 24
)

type pattern struct {
	category     string
	min, max     float64
	perMonth     float64 // expected number of transactions per month
	income       bool
	merchant     bool // append a company name to the description
	descriptions []string
}

var patterns = []pattern{
	{"Housing", 1500, 2000, 1, false, false, []string{"Rent Payment", "Mortgage Payment", "Property Tax", "Home Insurance"}},
	{"Food", 50, 200, 15, false, true, []string{"Grocery Store", "Restaurant", "Coffee Shop", "Food Delivery"}},
	{"Transportation", 30, 100, 10, false, false, []string{"Gas Station", "Public Transit", "Ride Share", "Car Insurance"}},
	{"Entertainment", 20, 150, 8, false, false, []string{"Movie Theater", "Streaming Service", "Concert", "Sports Event"}},
	{"Shopping", 50, 300, 6, false, true, []string{"Clothing Store", "Electronics", "Home Goods", "Online Shopping"}},
	{"Utilities", 100, 300, 1, false, false, []string{"Electric Bill", "Water Bill", "Internet Service", "Phone Bill"}},
	{"Healthcare", 50, 500, 2, false, false, []string{"Doctor Visit", "Pharmacy", "Dental Care", "Health Insurance"}},
	{"Income", 4000, 6000, 1, true, false, []string{"Salary Deposit", "Freelance Payment", "Investment Income"}},
	{"Other", 20, 200, 4, false, false, []string{"ATM Withdrawal", "Bank Fee", "Charity Donation", "Gift"}},
}

type Options struct {
	// Months is the number of months before End that are covered.
	Months int

	// End is the last day of the statement. Defaults to today.
	End time.Time

	// Seed makes the statement reproducible. 0 uses a random seed.
	Seed uint64
}

// Generate creates a statement with one row per transaction, ordered by date.
// Every transaction carries the category it was generated for.
func Generate(opts Options) []ledger.Transaction {
	if opts.Months <= 0 {
		opts.Months = DefaultMonths
	}
	if opts.Months > MaxMonths {
		opts.Months = MaxMonths
	}

	end := opts.End
	if end.IsZero() {
		end = time.Now()
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -opts.Months, 1)

	faker := gofakeit.New(opts.Seed)

	transactions := make([]ledger.Transaction, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, p := range patterns {
			if faker.Float64() >= p.perMonth/30 {
				continue
			}

			// The spread keeps amounts from looking too uniform
			amount := decimal.NewFromFloat(faker.Float64Range(p.min, p.max) * faker.Float64Range(0.9, 1.1)).Round(2)
			if !p.income {
				amount = amount.Neg()
			}

			description := faker.RandomString(p.descriptions)
			if p.merchant {
				description = description + " " + faker.Company()
			}

			transactions = append(transactions, ledger.Transaction{
				Date:        day,
				Description: description,
				Amount:      amount,
				Category:    p.category,
			})
		}
	}

	return transactions
}

// WriteCSV writes transactions in the format the importer reads.
func WriteCSV(w io.Writer, transactions []ledger.Transaction, withCategory bool) error {
	writer := csv.NewWriter(w)

	header := []string{"date", "description", "amount"}
	if withCategory {
		header = append(header, "category")
	}

	if err := writer.Write(header); err != nil {
		return err
	}

	for _, t := range transactions {
		record := []string{t.Date.Format(time.DateOnly), t.Description, t.Amount.StringFixed(2)}
		if withCategory {
			record = append(record, t.Category)
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
