// internal/pipeline/datasets.go
// Package: pipeline
package pipeline

import (
	"os"
	"path/filepath"
)

// Dataset describes one parameter sweep produced by the solver runners.
type Dataset struct {
	ID          string `json:"id"`           // e.g. "items"
	File        string `json:"file"`         // results file name inside the results dir
	Column      string `json:"column"`       // derived grouping column
	TitlePrefix string `json:"title_prefix"` // human title, also the output file stem
	MakeTarget  string `json:"make_target"`  // target that produces File
}

// Datasets is the fixed set processed on every run, in order.
var Datasets = []Dataset{
	{
		ID:          "items",
		File:        "items_results.csv",
		Column:      "N_extracted",
		TitlePrefix: "Items Variation",
		MakeTarget:  "test-items",
	},
	{
		ID:          "weights",
		File:        "weights_results.csv",
		Column:      "MaxWeight_extracted",
		TitlePrefix: "Max Weight Variation",
		MakeTarget:  "test-weights",
	},
	{
		ID:          "capacity",
		File:        "capacity_results.csv",
		Column:      "CapacityFactor_extracted",
		TitlePrefix: "Capacity Variation",
		MakeTarget:  "test-capacity",
	},
}

// Path joins the dataset file onto resultsDir.
func (d Dataset) Path(resultsDir string) string {
	return filepath.Join(resultsDir, d.File)
}

// Available reports whether the results file exists under resultsDir.
func (d Dataset) Available(resultsDir string) bool {
	info, err := os.Stat(d.Path(resultsDir))
	return err == nil && !info.IsDir()
}
