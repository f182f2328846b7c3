// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/real-return/pkg/format"
	"github.com/iwvelando/real-return/pkg/returns"
)

// PrettyString renders a human-readable rather than machine-readable table.
func PrettyString(result *returns.Result, opts format.Options) string {
	var b strings.Builder

	nominal, _ := format.Percentage(result.Nominal, 2)
	inflation, _ := format.Percentage(result.Inflation, 2)
	realReturn, _ := format.Percentage(result.RealReturn, 4)

	fmt.Fprintf(&b, "--- Purchasing power of %s ---\n", format.Currency(result.Principal, opts))
	fmt.Fprintf(&b, "Nominal return: %s | Inflation: %s | Real return: %s\n", nominal, inflation, realReturn)
	fmt.Fprintf(&b, "Assessment: %s\n\n", result.Assessment.Message())

	fmt.Fprintf(&b, "Years | Nominal Value        | Real Value           | Inflation Cost\n")
	fmt.Fprintf(&b, "_____ | _____________        | __________           | ______________\n")
	for _, row := range result.Rows {
		fmt.Fprintf(&b, "%5d | %-20s | %-20s | %s\n",
			row.Years,
			format.Currency(row.NominalValue, opts),
			format.Currency(row.RealValue, opts),
			format.Currency(row.InflationCost, opts),
		)
	}

	return b.String()
}

// PrettyFormat prints the human-readable table to stdout.
func PrettyFormat(result *returns.Result, opts format.Options) {
	fmt.Print(PrettyString(result, opts))
}

// CsvString renders the projection in comma-separated value format.
func CsvString(result *returns.Result) string {
	var b strings.Builder
	b.WriteString(`"years","nominal value","real value","inflation cost"` + "\n")
	for _, row := range result.Rows {
		fmt.Fprintf(&b, "\"%d\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
			row.Years, row.NominalValue, row.RealValue, row.InflationCost)
	}
	return b.String()
}

// CsvFormat prints the CSV rendering to stdout.
func CsvFormat(result *returns.Result) {
	fmt.Print(CsvString(result))
}
