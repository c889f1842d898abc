package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ledgerlens/backend/internal/importer"
	"github.com/ledgerlens/backend/internal/insights"
	"golang.org/x/text/currency"
)

var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText).Align(lipgloss.Center)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle    = lipgloss.NewStyle().Foreground(colorOrange)
	positiveText = lipgloss.NewStyle().Foreground(colorGreen)
	negativeText = lipgloss.NewStyle().Foreground(colorRed)
)

type Options struct {
	// Currency is the ISO 4217 code amounts are shown in. Defaults to USD.
	Currency string

	// Import is shown as a header line if set.
	Import *importer.Result
}

// Render renders the summary as a text report.
func Render(s insights.Summary, opts Options) (string, error) {
	unit := currency.USD
	if opts.Currency != "" {
		var err error
		unit, err = currency.ParseISO(opts.Currency)
		if err != nil {
			return "", fmt.Errorf("unknown currency %q: %w", opts.Currency, err)
		}
	}

	var b strings.Builder
	b.WriteString(renderTitle("LedgerLens report"))
	b.WriteString("\n\n")

	if opts.Import != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d rows read, %d imported, %d skipped, %d possible duplicates",
			opts.Import.Rows, opts.Import.Valid, len(opts.Import.Skipped), len(opts.Import.Duplicates))))
		b.WriteString("\n\n")
	}

	o := s.Overview
	b.WriteString(renderTable(table{
		title:   "Overview",
		headers: []string{"", "Total", "Per month"},
		rows: [][]string{
			{"Income", Money(o.Income, unit), Money(o.MonthlyIncome, unit)},
			{"Spend", Money(o.Spend, unit), Money(o.MonthlySpend, unit)},
			{"Net", signed(Money(o.Net, unit), o.Net.IsNegative()), Money(o.MonthlySavings, unit)},
			{"Savings rate", Percent(o.SavingsRate), ""},
			{"Transactions", strconv.Itoa(o.Transactions), ""},
			{"Months", strconv.Itoa(o.Months), ""},
			{"Calendar span", fmt.Sprintf("%d months", o.Span), ""},
		},
	}))

	if len(s.Monthly) > 0 {
		rows := make([][]string, 0, len(s.Monthly))
		for _, m := range s.Monthly {
			rows = append(rows, []string{m.Month.String(), Money(m.Income, unit), Money(m.Spend, unit), signed(Money(m.Net, unit), m.Net.IsNegative())})
		}
		b.WriteString("\n")
		b.WriteString(renderTable(table{title: "Monthly trend", headers: []string{"Month", "Income", "Spend", "Net"}, rows: rows}))
	}

	if len(s.Categories) > 0 {
		rows := make([][]string, 0, len(s.Categories))
		for _, c := range s.Categories {
			rows = append(rows, []string{c.Category, Money(c.Spend, unit), Percent(c.Percentage), Money(c.MonthlyAverage, unit)})
		}
		b.WriteString("\n")
		b.WriteString(renderTable(table{title: "Spending by category", headers: []string{"Category", "Spend", "Share", "Per month"}, rows: rows}))
	}

	if s.Benchmark != nil {
		rows := make([][]string, 0, len(s.Benchmark.Deltas))
		for _, d := range s.Benchmark.Deltas {
			rows = append(rows, []string{d.Category, Percent(d.User), Percent(d.Benchmark), Points(d.Delta)})
		}
		b.WriteString("\n")
		b.WriteString(renderTable(table{
			title:   fmt.Sprintf("Benchmark (%s)", s.Benchmark.Bracket),
			headers: []string{"Category", "You", "Benchmark", "Difference"},
			rows:    rows,
		}))
	}

	if len(s.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("  Recommendations"))
		b.WriteString("\n")
		for _, r := range s.Recommendations {
			b.WriteString(fmt.Sprintf("  %s %s\n    %s\n", warnStyle.Render("•"), r.Message, mutedStyle.Render(r.Tip)))
		}
	}

	if s.SavingsGoal != nil {
		g := s.SavingsGoal
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("  Savings goal"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s of %s, %s to go\n", progressBar(g.Progress.InexactFloat64(), 30), Money(g.Saved, unit), Money(g.Goal, unit), Money(g.Remaining, unit)))
	}

	if len(s.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range s.Warnings {
			b.WriteString(warnStyle.Render("  ! " + w))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func signed(s string, negative bool) string {
	if negative {
		return negativeText.Render(s)
	}
	return positiveText.Render(s)
}

func renderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(titleStyle.Render(title))
}

// progressBar renders a bar for a value between 0 and 1.
func progressBar(progress float64, width int) string {
	progress = max(0, min(progress, 1))
	filled := int(progress * float64(width))
	return "[" + positiveText.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled)) + "] " + strconv.Itoa(int(progress*100)) + "%"
}
