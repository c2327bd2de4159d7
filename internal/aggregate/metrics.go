// internal/aggregate/metrics.go
// Package: aggregate
package aggregate

import (
	"github.com/montanaflynn/stats"

	"github.com/mwiater/knapbench/internal/results"
)

// meanStd summarizes the valid entries of values. Missing entries are
// excluded rather than counted as zero.
func meanStd(values []results.Metric) Stat {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if v.Valid {
			data = append(data, v.Value)
		}
	}

	s := Stat{N: len(data)}
	if s.N == 0 {
		return s
	}
	s.Mean, _ = stats.Mean(data)
	if s.N > 1 {
		s.Std, _ = stats.StandardDeviationSample(data)
	}
	return s
}
