// internal/aggregate/aggregate.go
// Package: aggregate
package aggregate

import (
	"slices"

	"github.com/mwiater/knapbench/internal/results"
)

// Aggregate groups observations by their derived X and summarizes each of
// the four metrics per group.
func Aggregate(t *results.Table) *Table {
	byX := map[int][]results.Observation{}
	for _, o := range t.Observations {
		byX[o.X] = append(byX[o.X], o)
	}

	keys := make([]int, 0, len(byX))
	for x := range byX {
		keys = append(keys, x)
	}
	slices.Sort(keys)

	out := &Table{XColumn: t.XColumn, Rows: make([]Row, 0, len(keys))}
	for _, x := range keys {
		group := byX[x]
		var simple, prob, optimal, ratio []results.Metric
		for _, o := range group {
			simple = append(simple, o.AvgSimpleTime)
			prob = append(prob, o.AvgProbTime)
			optimal = append(optimal, o.OptimalPercentage)
			ratio = append(ratio, o.AvgTimeRatio)
		}
		out.Rows = append(out.Rows, Row{
			X:                 x,
			Count:             len(group),
			AvgSimpleTime:     meanStd(simple),
			AvgProbTime:       meanStd(prob),
			OptimalPercentage: meanStd(optimal),
			AvgTimeRatio:      meanStd(ratio),
		})
	}
	return out
}
