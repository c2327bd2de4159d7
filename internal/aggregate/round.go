// internal/aggregate/round.go
// Package: aggregate
package aggregate

import "math"

// Display precision for exported tables.
const (
	TimeDigits    = 4 // execution times and speedup
	PercentDigits = 2 // optimality percentage
)

// roundTo rounds v to the given number of decimal places, half away from zero.
// Values too large to scale are already integral and come back unchanged.
func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	scaled := v * p
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / p
}

func (s Stat) round(digits int) Stat {
	s.Mean = roundTo(s.Mean, digits)
	s.Std = roundTo(s.Std, digits)
	return s
}

// Rounded returns a copy of t with times and speedup rounded to TimeDigits
// and optimality rounded to PercentDigits. Applying it twice is a no-op.
func (t *Table) Rounded() *Table {
	out := &Table{XColumn: t.XColumn, Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		r.AvgSimpleTime = r.AvgSimpleTime.round(TimeDigits)
		r.AvgProbTime = r.AvgProbTime.round(TimeDigits)
		r.OptimalPercentage = r.OptimalPercentage.round(PercentDigits)
		r.AvgTimeRatio = r.AvgTimeRatio.round(TimeDigits)
		out.Rows[i] = r
	}
	return out
}
