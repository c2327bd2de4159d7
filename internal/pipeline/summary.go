// internal/pipeline/summary.go
// Package: pipeline
package pipeline

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/knapbench/internal/aggregate"
	"github.com/mwiater/knapbench/internal/export"
)

// renderSummary draws the rounded aggregate as a bordered terminal table
// under the dataset title.
func renderSummary(out io.Writer, ds Dataset, agg *aggregate.Table) string {
	r := lipgloss.NewRenderer(out)
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	borderStyle := r.NewStyle().Foreground(lipgloss.Color("244"))
	cell := r.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(export.Headers(agg.XColumn)...).
		Rows(export.Cells(agg)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 0 {
				return cell
			}
			return cell.Align(lipgloss.Right)
		})

	return titleStyle.Render(export.TableTitle(ds.TitlePrefix)) + "\n" + t.String()
}
