// cmd/knapbench/list_datasets.go
package knapbench

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mwiater/knapbench/internal/pipeline"
)

// datasetsCmd implements 'list datasets'.
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the benchmark datasets and whether their results exist",
	Long:  `The 'datasets' subcommand prints every dataset with its results file, grouping column and make target, and marks whether the results file is present in the results directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderDatasets(cmd, cfg.ResultsDir))
		return nil
	},
}

func init() {
	listCmd.AddCommand(datasetsCmd)
}

func renderDatasets(cmd *cobra.Command, resultsDir string) string {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	present := r.NewStyle().Foreground(lipgloss.Color("46"))
	missing := r.NewStyle().Foreground(lipgloss.Color("214"))
	cell := r.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(pipeline.Datasets))
	for _, ds := range pipeline.Datasets {
		status := missing.Render("missing")
		if ds.Available(resultsDir) {
			status = present.Render("present")
		}
		rows = append(rows, []string{ds.ID, ds.Path(resultsDir), ds.Column, "make " + ds.MakeTarget, status})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DATASET", "FILE", "GROUP BY", "PRODUCED BY", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		})
	return t.String()
}
