// internal/results/loader.go
// Package: results
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when the header lacks one of the required columns.
var ErrMissingColumn = errors.New("missing required column")

// ReadFile opens path and parses it with Read. A missing file yields an
// error satisfying errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open results file: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return rows, nil
}

// Read parses a comma-delimited results table. Columns are located by header
// name so their order does not matter and extra columns are ignored.
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		cell := func(col string) string {
			i := idx[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		rows = append(rows, Row{
			Instance:          strings.TrimSpace(cell(ColInstance)),
			AvgSimpleTime:     ParseMetric(cell(ColAvgSimpleTime)),
			AvgProbTime:       ParseMetric(cell(ColAvgProbTime)),
			OptimalPercentage: ParseMetric(cell(ColOptimalPercentage)),
			AvgTimeRatio:      ParseMetric(cell(ColAvgTimeRatio)),
		})
	}
	return rows, nil
}

// ParseMetric coerces a cell to a Metric. Anything that is not a finite
// number ("N/A", blank, "nan") becomes Missing.
func ParseMetric(s string) Metric {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Missing
	}
	return Some(v)
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		// Strip a UTF-8 BOM some spreadsheet exports leave on the first header.
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	required := append([]string{ColInstance}, MetricColumns...)
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return idx, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
