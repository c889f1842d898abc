package importer

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFile      = errors.New("the uploaded file is empty, it must at least contain a header line")
	ErrMissingColumns = errors.New("the uploaded file is missing required columns")
)

// Row level errors. These never abort an import, they are reported
// with the SkippedRow they caused.
var (
	errDateEmpty          = errors.New("the date is empty")
	errAmountEmpty        = errors.New("no amount is set for the transaction")
	errDebitAndCredit     = errors.New("both debit and credit are set for the transaction")
	errAmountNotANumber   = errors.New("the amount could not be parsed to a decimal")
	errDateFormatUnknown  = errors.New("the date does not match any supported format")
	errRecordTooShort     = errors.New("the row has fewer fields than the header")
	errMalformedCSVRecord = errors.New("the row is not valid CSV")
)

// missingColumnsError wraps ErrMissingColumns with the names of the missing columns.
func missingColumnsError(columns []string) error {
	return fmt.Errorf("%w: %v", ErrMissingColumns, columns)
}
