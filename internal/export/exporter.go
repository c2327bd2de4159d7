// internal/export/exporter.go
// Package: export
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Default chart size in inches.
const (
	DefaultChartWidth  = 12.0
	DefaultChartHeight = 6.0
)

// Exporter writes aggregated tables and charts into Dir. Every output name
// is derived from the dataset's title prefix, so reruns overwrite.
type Exporter struct {
	Dir         string
	ChartWidth  float64
	ChartHeight float64
	Logger      *slog.Logger
}

// NewExporter returns an exporter writing into dir with default chart size.
func NewExporter(dir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		Dir:         dir,
		ChartWidth:  DefaultChartWidth,
		ChartHeight: DefaultChartHeight,
		Logger:      logger,
	}
}

// ensureDir creates the output directory and returns the full path for name.
func (e *Exporter) ensureDir(name string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", e.Dir, err)
	}
	return filepath.Join(e.Dir, name), nil
}
