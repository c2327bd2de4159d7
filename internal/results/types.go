// internal/results/types.go
// Package: results
package results

// Column names expected in every solver results file.
const (
	ColInstance          = "Instance"
	ColAvgSimpleTime     = "Avg_Simple_Time"
	ColAvgProbTime       = "Avg_Prob_Time"
	ColOptimalPercentage = "Optimal_Percentage"
	ColAvgTimeRatio      = "Avg_Time_Ratio"
)

// MetricColumns lists the four numeric columns in file order.
var MetricColumns = []string{
	ColAvgSimpleTime,
	ColAvgProbTime,
	ColOptimalPercentage,
	ColAvgTimeRatio,
}

// Metric is a numeric cell that may be missing ("N/A", blank, unparsable).
type Metric struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Missing is the zero Metric.
var Missing = Metric{}

// Some wraps a present value.
func Some(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// Row is one benchmark observation as written by the solver runners.
type Row struct {
	Instance          string `json:"instance"`
	AvgSimpleTime     Metric `json:"avg_simple_time"`
	AvgProbTime       Metric `json:"avg_prob_time"`
	OptimalPercentage Metric `json:"optimal_percentage"`
	AvgTimeRatio      Metric `json:"avg_time_ratio"`
}

// Observation is a Row with its derived grouping value attached.
type Observation struct {
	Row
	X int `json:"x"`
}

// Table is the loaded file plus the name of the derived column.
type Table struct {
	XColumn      string        `json:"x_column"`
	Observations []Observation `json:"observations"`
}

// Len returns the number of observations.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Observations)
}
