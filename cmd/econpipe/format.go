package main

import (
	"fmt"
	"io"
	"strings"

	econ "github.com/ameenbasith/economic-comparison-project"
)

func printSummary(w io.Writer, res *econ.Result) {
	label := "authoritative"
	if res.Synthetic {
		label = "SYNTHETIC"
	}

	fmt.Fprintf(w, "run %s (%s data, base year %d)\n", res.RunID, label, res.BaseYear)
	fmt.Fprintf(w, "years joined: %d", len(res.Comparison))
	if n := len(res.Comparison); n > 0 {
		fmt.Fprintf(w, " (%d-%d)", res.Comparison[0].Year, res.Comparison[n-1].Year)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\n%-8s %14s %12s %8s\n", "decade", "avg price", "avg income", "ratio")
	for _, d := range res.Decades {
		fmt.Fprintf(w, "%-8d %14.0f %12.0f %8.2f\n", d.Decade, d.AvgHomePrice, d.AvgIncome, d.AvgRatio)
	}

	fmt.Fprintf(w, "\n%-8s %10s %14s %14s\n", "vs year", "ratio", "price cut %", "income gain %")
	for _, g := range res.Gaps {
		fmt.Fprintf(w, "%-8d %10.2f %14.1f %14.1f\n", g.ReferenceYear, g.HistoricalRatio, g.PriceDecreasePct, g.IncomeIncreasePct)
	}
}

func printRows(w io.Writer, colNames []string, rows [][]any) {
	fmt.Fprintln(w, strings.Join(colNames, "\t"))

	for _, row := range rows {
		var cells []string
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%v", v))
		}

		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}
