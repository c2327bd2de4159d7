// internal/export/naming.go
// Package: export
package export

import (
	"strconv"
	"strings"

	"github.com/mwiater/knapbench/internal/aggregate"
)

// derivedSuffix marks a column computed from the instance name rather than
// read from the results file. It is dropped from every human-facing label.
const derivedSuffix = "_extracted"

// Column labels used by the table and workbook exporters.
var metricLabels = []string{
	"Simple Time (s) Mean",
	"Simple Time (s) Std",
	"Prob Time (s) Mean",
	"Prob Time (s) Std",
	"Optimality (%) Mean",
	"Optimality (%) Std",
	"Speedup (x) Mean",
	"Speedup (x) Std",
}

// Slug normalizes a title prefix for use in file names.
func Slug(prefix string) string {
	return strings.ReplaceAll(strings.ToLower(prefix), " ", "_")
}

// AxisLabel strips the derived-column suffix, e.g. N_extracted -> N.
func AxisLabel(column string) string {
	return strings.ReplaceAll(column, derivedSuffix, "")
}

func columnSlug(column string) string {
	return strings.ReplaceAll(strings.ToLower(column), derivedSuffix, "")
}

// TableFileName is the markdown table name for a title prefix.
func TableFileName(prefix string) string {
	return Slug(prefix) + "_results_table.md"
}

// WorkbookFileName is the xlsx name for a title prefix.
func WorkbookFileName(prefix string) string {
	return Slug(prefix) + "_results_table.xlsx"
}

// TableTitle is the heading written above the markdown table.
func TableTitle(prefix string) string {
	return "Aggregated Results for " + prefix
}

// ChartFileNames returns the time, optimality and speedup chart names.
func ChartFileNames(prefix, column string) (timeChart, optimalityChart, speedupChart string) {
	base, col := Slug(prefix), columnSlug(column)
	return base + "_avg_time_with_std_vs_" + col + ".png",
		base + "_optimality_with_std_vs_" + col + ".png",
		base + "_speedup_with_std_vs_" + col + ".png"
}

// Headers returns the display header row for a table grouped by column.
func Headers(column string) []string {
	return append([]string{AxisLabel(column)}, metricLabels...)
}

// Cells renders t as display strings after rounding. Undefined statistics
// render as empty cells.
func Cells(t *aggregate.Table) [][]string {
	rounded := t.Rounded()
	out := make([][]string, 0, len(rounded.Rows))
	for _, r := range rounded.Rows {
		row := []string{strconv.Itoa(r.X)}
		for _, s := range rowStats(r) {
			row = append(row, formatMean(s), formatStd(s))
		}
		out = append(out, row)
	}
	return out
}

// rowStats lists a row's metrics in column order.
func rowStats(r aggregate.Row) []aggregate.Stat {
	return []aggregate.Stat{r.AvgSimpleTime, r.AvgProbTime, r.OptimalPercentage, r.AvgTimeRatio}
}

func formatMean(s aggregate.Stat) string {
	if !s.HasMean() {
		return ""
	}
	return formatFloat(s.Mean)
}

func formatStd(s aggregate.Stat) string {
	if !s.HasStd() {
		return ""
	}
	return formatFloat(s.Std)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
