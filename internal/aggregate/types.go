// internal/aggregate/types.go
// Package: aggregate
package aggregate

// Stat is the mean and sample standard deviation of one metric within a group.
// N counts the valid observations that contributed.
type Stat struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	N    int     `json:"n"`
}

// HasMean reports whether at least one observation contributed.
func (s Stat) HasMean() bool { return s.N > 0 }

// HasStd reports whether the sample standard deviation is defined (n >= 2).
func (s Stat) HasStd() bool { return s.N > 1 }

// Row aggregates every observation sharing one X value.
type Row struct {
	X                 int  `json:"x"`
	Count             int  `json:"count"` // observations in the group, valid or not
	AvgSimpleTime     Stat `json:"avg_simple_time"`
	AvgProbTime       Stat `json:"avg_prob_time"`
	OptimalPercentage Stat `json:"optimal_percentage"`
	AvgTimeRatio      Stat `json:"avg_time_ratio"`
}

// Table is the grouped result, sorted ascending by X.
type Table struct {
	XColumn string `json:"x_column"`
	Rows    []Row  `json:"rows"`
}

// Xs returns the group keys as floats for plotting.
func (t *Table) Xs() []float64 {
	xs := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		xs[i] = float64(r.X)
	}
	return xs
}
