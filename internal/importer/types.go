// Package importer parses uploaded bank statements into a table of transactions.
//
// Parsing never fails because of a single bad row. Rows that cannot be parsed are
// collected as SkippedRow so that they can be reported back to the user. Only
// structural problems with the file, e.g. a missing required column, are fatal.
package importer

import (
	"fmt"
	"time"

	"github.com/ledgerlens/backend/internal/ledger"
)

// Options configures the parser.
type Options struct {
	// Comma is the field delimiter. If it is zero, the delimiter is detected
	// from the header line.
	Comma rune

	// Location is used for dates without time zone information. Defaults to UTC.
	Location *time.Location
}

// Result is the outcome of parsing a statement.
type Result struct {
	Transactions []ledger.Transaction `json:"-"`
	Rows         int                  `json:"rows" example:"42"`           // Number of data rows in the file
	Valid        int                  `json:"valid" example:"41"`          // Number of rows parsed into transactions
	Skipped      []SkippedRow         `json:"skipped"`                     // Rows that could not be parsed
	Duplicates   []int                `json:"duplicates" example:"17"`     // Lines that repeat an earlier row exactly
	Categorized  bool                 `json:"categorized" example:"false"` // If the file has a category column
	Delimiter    string               `json:"delimiter" example:","`       // The field delimiter used
}

// SkippedRow is a data row that could not be parsed into a transaction.
type SkippedRow struct {
	Line   int      `json:"line" example:"7"`                                             // Line of the row in the file
	Reason string   `json:"reason" example:"the amount could not be parsed to a decimal"` // Why the row was skipped
	Record []string `json:"record"`                                                       // The raw fields of the row
}

// Error returns the reason including the line of the input.
func (s SkippedRow) Error() string {
	return fmt.Sprintf("error in line %d of the CSV: %s", s.Line, s.Reason)
}
