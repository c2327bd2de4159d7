// internal/export/table.go
// Package: export
package export

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/knapbench/internal/aggregate"
)

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
)

// RenderMarkdown renders headers and rows as a pipe-delimited markdown table.
// The first column is left aligned, the rest right aligned.
func RenderMarkdown(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return cellStyle
			}
			return numericStyle
		})
	return t.String()
}

// WriteTable writes t as a markdown document: a "### title" heading, a blank
// line and the rounded table. An existing file is overwritten.
func (e *Exporter) WriteTable(t *aggregate.Table, filename, title string) (string, error) {
	path, err := e.ensureDir(filename)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", title)
	b.WriteString(RenderMarkdown(Headers(t.XColumn), Cells(t)))
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write table %s: %w", path, err)
	}
	e.Logger.Debug("Wrote results table",
		slog.String("path", path),
		slog.Int("rows", len(t.Rows)))
	return path, nil
}
