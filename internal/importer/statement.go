package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/ledgerlens/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// Canonical column names.
const (
	columnDate        = "date"
	columnDescription = "description"
	columnAmount      = "amount"
	columnCategory    = "category"
	columnDebit       = "debit"
	columnCredit      = "credit"
)

// aliases maps header names used by common bank exports to the canonical name.
var aliases = map[string]string{
	"transaction_date":   columnDate,
	"transaction date":   columnDate,
	"booking date":       columnDate,
	"posted date":        columnDate,
	"transaction_amount": columnAmount,
	"transaction amount": columnAmount,
	"memo":               columnDescription,
	"payee":              columnDescription,
	"details":            columnDescription,
	"debit (-)":          columnDebit,
	"credit (+)":         columnCredit,
	"outflow":            columnDebit,
	"inflow":             columnCredit,
}

// dateLayouts are tried in order, the first one that parses wins.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Amount formats. Statements with a semicolon delimiter use a decimal comma and
// dots for grouping, all others a decimal point and commas for grouping. An
// amount with one or two digits after a single comma always has a decimal comma.
var (
	decimalCommaAmount = regexp.MustCompile(`^[-+]?[0-9.]*,[0-9]{1,2}$`)
	commaGrouped       = regexp.MustCompile(`^[-+]?[0-9]{1,3}(,[0-9]{3})+(\.[0-9]+)?$`)
	dotGrouped         = regexp.MustCompile(`^[-+]?[0-9]{1,3}(\.[0-9]{3})+(,[0-9]+)?$`)
)

// columns holds the index of every known column, -1 if it is absent.
type columns struct {
	date, description, amount, category, debit, credit int
}

// Parse parses a delimited statement with the columns date, description, amount
// and an optional category.
//
// Instead of amount, a statement can contain debit and credit columns. A debit
// is always stored as a negative amount, a credit as a positive one.
func Parse(f io.Reader, opts Options) (Result, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return Result{}, fmt.Errorf("could not read the uploaded file: %w", err)
	}

	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{}, ErrEmptyFile
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	comma := opts.Comma
	if comma == 0 {
		comma = sniffDelimiter(data)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("could not read the header line: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Transactions: make([]ledger.Transaction, 0),
		Skipped:      make([]SkippedRow, 0),
		Duplicates:   make([]int, 0),
		Categorized:  cols.category >= 0,
		Delimiter:    string(comma),
	}

	seen := make(map[string]struct{})
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		result.Rows++

		if err != nil {
			var parseErr *csv.ParseError
			line := 0
			if errors.As(err, &parseErr) {
				line = parseErr.StartLine
			}

			result.Skipped = append(result.Skipped, SkippedRow{
				Line:   line,
				Reason: fmt.Errorf("%w: %w", errMalformedCSVRecord, err).Error(),
				Record: slices.Clone(record),
			})
			continue
		}

		// always use the first field, we are only interested in the line
		line, _ := reader.FieldPos(0)

		transaction, err := parseRecord(record, cols, loc, comma == ';')
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{
				Line:   line,
				Reason: err.Error(),
				Record: slices.Clone(record),
			})
			continue
		}

		transaction.Line = line
		transaction.ImportHash = Fingerprint(record)

		if _, ok := seen[transaction.ImportHash]; ok {
			result.Duplicates = append(result.Duplicates, line)
		}
		seen[transaction.ImportHash] = struct{}{}

		result.Transactions = append(result.Transactions, transaction)
	}

	result.Valid = len(result.Transactions)
	return result, nil
}

// resolveColumns maps the header to column indices and verifies that all
// required columns are present.
func resolveColumns(header []string) (columns, error) {
	cols := columns{-1, -1, -1, -1, -1, -1}

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if alias, ok := aliases[name]; ok {
			name = alias
		}

		// The first column with a name wins
		switch {
		case name == columnDate && cols.date < 0:
			cols.date = i
		case name == columnDescription && cols.description < 0:
			cols.description = i
		case name == columnAmount && cols.amount < 0:
			cols.amount = i
		case name == columnCategory && cols.category < 0:
			cols.category = i
		case name == columnDebit && cols.debit < 0:
			cols.debit = i
		case name == columnCredit && cols.credit < 0:
			cols.credit = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, columnDate)
	}
	if cols.description < 0 {
		missing = append(missing, columnDescription)
	}
	if cols.amount < 0 && cols.debit < 0 && cols.credit < 0 {
		missing = append(missing, columnAmount)
	}

	if len(missing) > 0 {
		return cols, missingColumnsError(missing)
	}

	return cols, nil
}

// parseRecord parses a single data row.
func parseRecord(record []string, cols columns, loc *time.Location, decimalComma bool) (ledger.Transaction, error) {
	field := func(i int) (string, error) {
		if i < 0 {
			return "", nil
		}
		if i >= len(record) {
			return "", errRecordTooShort
		}
		return record[i], nil
	}

	rawDate, err := field(cols.date)
	if err != nil {
		return ledger.Transaction{}, err
	}

	date, err := parseDate(rawDate, loc)
	if err != nil {
		return ledger.Transaction{}, err
	}

	description, err := field(cols.description)
	if err != nil {
		return ledger.Transaction{}, err
	}

	amount, err := recordAmount(field, cols, decimalComma)
	if err != nil {
		return ledger.Transaction{}, err
	}

	// A missing trailing category is treated as not set
	category := ""
	if cols.category >= 0 && cols.category < len(record) {
		category = strings.TrimSpace(record[cols.category])
	}

	return ledger.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
	}, nil
}

// recordAmount reads the amount either from the amount column or from the
// debit and credit columns.
func recordAmount(field func(int) (string, error), cols columns, decimalComma bool) (decimal.Decimal, error) {
	if cols.amount >= 0 {
		raw, err := field(cols.amount)
		if err != nil {
			return decimal.Zero, err
		}
		return parseAmount(raw, decimalComma)
	}

	debit, err := field(cols.debit)
	if err != nil {
		return decimal.Zero, err
	}

	credit, err := field(cols.credit)
	if err != nil {
		return decimal.Zero, err
	}

	debit, credit = strings.TrimSpace(debit), strings.TrimSpace(credit)
	switch {
	case debit != "" && credit != "":
		return decimal.Zero, errDebitAndCredit
	case debit != "":
		amount, err := parseAmount(debit, decimalComma)
		if err != nil {
			return decimal.Zero, err
		}
		return amount.Abs().Neg(), nil
	case credit != "":
		amount, err := parseAmount(credit, decimalComma)
		if err != nil {
			return decimal.Zero, err
		}
		return amount.Abs(), nil
	}

	return decimal.Zero, errAmountEmpty
}

// parseDate parses the date with the first matching layout.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errDateEmpty
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errDateFormatUnknown, s)
}

// parseAmount parses a decimal amount.
//
// Whitespace, currency symbols and grouping separators are ignored, an amount
// in parentheses is negative. Amounts where the separators do not form a
// valid grouping are rejected.
func parseAmount(s string, decimalComma bool) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errAmountEmpty
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)

	normalized, ok := normalizeSeparators(s, decimalComma)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", errAmountNotANumber, s)
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errAmountNotANumber, s)
	}

	if negative {
		amount = amount.Abs().Neg()
	}

	return amount, nil
}

// normalizeSeparators converts the amount to use a decimal point and no
// grouping. It reports false for ambiguous amounts.
func normalizeSeparators(s string, decimalComma bool) (string, bool) {
	switch {
	case !strings.ContainsAny(s, ",."):
		return s, true

	case decimalComma || decimalCommaAmount.MatchString(s):
		if dotGrouped.MatchString(s) {
			return strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1), true
		}

		if !strings.Contains(s, ",") {
			// A decimal point in a decimal comma statement
			return s, true
		}

		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			return strings.Replace(s, ",", ".", 1), true
		}

		return s, false

	case strings.Contains(s, ","):
		if commaGrouped.MatchString(s) {
			return strings.ReplaceAll(s, ",", ""), true
		}
		return s, false
	}

	return s, true
}

// sniffDelimiter picks the most frequent of comma, semicolon and tab in the
// header line. Commas win ties.
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}

	best, count := ',', bytes.Count(header, []byte{','})
	for _, candidate := range []rune{';', '\t'} {
		if n := bytes.Count(header, []byte(string(candidate))); n > count {
			best, count = candidate, n
		}
	}

	return best
}
