// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"
	"strings"

	"github.com/mrmeatball22/deal-analyzer/internal/analysis"
	"github.com/mrmeatball22/deal-analyzer/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []analysis.Result) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		metrics := result.Metrics
		fmt.Printf("--- Results for deal %s ---\n", result.Name)
		_, _ = p.Printf("Units                    | %d\n", metrics.UnitCount)
		fmt.Printf("Gross Rent (Annual)      | %s\n", format.Currency(metrics.GrossRentAnnual))
		fmt.Printf("Operating Income         | %s\n", format.Currency(metrics.GrossOperatingIncome))
		fmt.Printf("Operating Expenses       | %s\n", format.Currency(metrics.OperatingExpenses))
		fmt.Printf("NOI                      | %s\n", format.Currency(metrics.NOI))
		fmt.Printf("DSCR                     | %s\n", format.Ratio(metrics.DSCR))
		fmt.Printf("Annual Cash Flow         | %s\n", format.Currency(metrics.AnnualCashFlow))
		fmt.Printf("Cap Rate                 | %s\n", format.Percent(metrics.CapRate))
		fmt.Printf("Cash-on-Cash Return      | %s\n", format.Percent(metrics.CashOnCashReturn))
		fmt.Printf("Total ROI                | %s\n", format.Percent(metrics.TotalROI))
		fmt.Printf("Breakeven Rent/Unit      | %s\n", format.Currency(metrics.BreakevenRentPerUnit))
		fmt.Printf("Monthly Payment          | %s\n", format.Currency(metrics.MonthlyTotalPayment))
		fmt.Printf("Cash Invested            | %s\n", format.Currency(metrics.CashInvested))
		fmt.Printf("Principal Paydown        | %s\n", format.Currency(metrics.PrincipalPaydown))

		if len(metrics.Projections) > 0 {
			fmt.Printf("\nYear | Gross Rent/Month | NOI           | Cash Flow     | DSCR\n")
			fmt.Printf("____ | ________________ | _____________ | _____________ | ____\n")
			for _, projection := range metrics.Projections {
				fmt.Printf("%4d | %16s | %13s | %13s | %s\n",
					projection.Year,
					format.Currency(projection.GrossRent),
					format.Currency(projection.NOI),
					format.Currency(projection.CashFlow),
					format.Ratio(projection.DSCR),
				)
			}
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []analysis.Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the results as CSV, one metrics row per deal followed by
// projection rows for deals with rent growth enabled.
func CsvString(results []analysis.Result) string {
	var builder strings.Builder

	builder.WriteString(`"deal","units","gross rent annual","operating income","operating expenses",` +
		`"noi","dscr","annual cash flow","cap rate","cash on cash","total roi",` +
		`"breakeven rent per unit","monthly payment","cash invested","principal paydown"` + "\n")
	for _, result := range results {
		metrics := result.Metrics
		builder.WriteString(fmt.Sprintf(`"%s","%d","%.2f","%.2f","%.2f","%.2f","%.4f","%.2f","%.4f","%.4f","%.4f","%.2f","%.2f","%.2f","%.2f"`,
			result.Name,
			metrics.UnitCount,
			metrics.GrossRentAnnual,
			metrics.GrossOperatingIncome,
			metrics.OperatingExpenses,
			metrics.NOI,
			metrics.DSCR,
			metrics.AnnualCashFlow,
			metrics.CapRate,
			metrics.CashOnCashReturn,
			metrics.TotalROI,
			metrics.BreakevenRentPerUnit,
			metrics.MonthlyTotalPayment,
			metrics.CashInvested,
			metrics.PrincipalPaydown,
		))
		builder.WriteString("\n")
	}

	wroteProjectionHeader := false
	for _, result := range results {
		if len(result.Metrics.Projections) == 0 {
			continue
		}
		if !wroteProjectionHeader {
			builder.WriteString(`"deal","year","gross rent monthly","noi","cash flow","dscr"` + "\n")
			wroteProjectionHeader = true
		}
		for _, projection := range result.Metrics.Projections {
			builder.WriteString(fmt.Sprintf(`"%s","%d","%.2f","%.2f","%.2f","%.4f"`,
				result.Name,
				projection.Year,
				projection.GrossRent,
				projection.NOI,
				projection.CashFlow,
				projection.DSCR,
			))
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
