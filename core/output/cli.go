package output

import (
	"fmt"
	"io"
	"strings"

	"cover-quote/core/quote"
)

const tableWidth = 73

// CLIFormatter renders a human-readable table per cover
type CLIFormatter struct {
	opts Options
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes result as a table
func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	p := &printer{w: w}
	rule := strings.Repeat("─", tableWidth)

	p.printf("┌%s┐\n", rule)
	p.printf("│ %-*s │\n", tableWidth-2, "QUOTE OPTIONS")
	p.printf("│ %-*s │\n", tableWidth-2, fmt.Sprintf("risk score %g, risk quotient %g", result.RiskScore, result.RiskQuotient))

	for _, id := range result.CoverIDs() {
		p.printf("├%s┤\n", rule)
		p.printf("│ %-*s │\n", tableWidth-2, truncate(id, tableWidth-2))
		p.printf("│   %12s %12s %20s %22s │\n", "VALUE", "EXCESS", "PRICE", "")

		rows := result.Covers[id].Rows()
		cheapest := cheapestRow(rows)
		for i, row := range rows {
			marker := ""
			if f.opts.ShowCheapest && i == cheapest {
				marker = "← cheapest"
			}
			p.printf("│   %12d %12d %20s %22s │\n",
				row.Value, row.Excess, displayPrice(row.Price, f.opts.Precision).StringFixed(f.opts.Precision), marker)
		}
	}

	p.printf("└%s┘\n", rule)
	if result.Metadata.Duration != "" {
		p.printf("\nGenerated %d covers in %s (request %s)\n", len(result.Covers), result.Metadata.Duration, result.RequestID)
	}
	return p.err
}

// cheapestRow returns the index of the lowest price, the first on ties, or -1
func cheapestRow(rows []quote.Row) int {
	best := -1
	for i, row := range rows {
		if best < 0 || row.Price < rows[best].Price {
			best = i
		}
	}
	return best
}

// printer remembers the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
