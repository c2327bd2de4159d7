// internal/export/workbook.go
// Package: export
package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/mwiater/knapbench/internal/aggregate"
)

// SummarySheet is the worksheet holding the aggregated table.
const SummarySheet = "Summary"

// WriteWorkbook writes the rounded table to an xlsx workbook: the title in
// A1, headers in row 3, one row per group below. Undefined statistics are
// left as empty cells so spreadsheet formulas skip them.
func (e *Exporter) WriteWorkbook(t *aggregate.Table, filename, title string) (string, error) {
	path, err := e.ensureDir(filename)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetCellValue(SummarySheet, "A1", title); err != nil {
		return "", err
	}

	headers := Headers(t.XColumn)
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SummarySheet, "A3", &headerRow); err != nil {
		return "", fmt.Errorf("write header row: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 3)
	if err != nil {
		return "", err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "A1", bold); err != nil {
		return "", err
	}
	if err := f.SetCellStyle(SummarySheet, "A3", lastHeader, bold); err != nil {
		return "", err
	}

	for i, r := range t.Rounded().Rows {
		values := []interface{}{r.X}
		for _, s := range rowStats(r) {
			values = append(values, meanValue(s), stdValue(s))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	e.Logger.Debug("Wrote workbook",
		slog.String("path", path),
		slog.Int("rows", len(t.Rows)))
	return path, nil
}

func meanValue(s aggregate.Stat) interface{} {
	if !s.HasMean() {
		return nil
	}
	return s.Mean
}

func stdValue(s aggregate.Stat) interface{} {
	if !s.HasStd() {
		return nil
	}
	return s.Std
}
