package pipeline

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "Instance,Avg_Simple_Time,Avg_Prob_Time,Optimal_Percentage,Avg_Time_Ratio\n"

func writeResults(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(csvHeader+body), 0o644))
}

func newTestDriver(t *testing.T, resultsDir string) (*Driver, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	d := NewDriver(resultsDir, filepath.Join(t.TempDir(), "plots"), &out,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	d.Exporter.ChartWidth, d.Exporter.ChartHeight = 4, 2
	return d, &out
}

func statuses(reports []Report) []Status {
	s := make([]Status, len(reports))
	for i, r := range reports {
		s[i] = r.Status
	}
	return s
}

func TestDatasets_Registry(t *testing.T) {
	require.Len(t, Datasets, 3)
	assert.Equal(t, "items", Datasets[0].ID)
	assert.Equal(t, "N_extracted", Datasets[0].Column)
	assert.Equal(t, "Max Weight Variation", Datasets[1].TitlePrefix)
	assert.Equal(t, "test-weights", Datasets[1].MakeTarget)
	assert.Equal(t, "capacity_results.csv", Datasets[2].File)
	assert.Equal(t, "CapacityFactor_extracted", Datasets[2].Column)
}

func TestDataset_Available(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, "items_results.csv", "test_items_10_run1,1,0.5,100,2\n")
	assert.True(t, Datasets[0].Available(dir))
	assert.False(t, Datasets[1].Available(dir))
}

func TestRun_MissingFileIsolated(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, "items_results.csv",
		"test_items_10_run1,1.0,0.5,100,2\ntest_items_10_run2,2.0,0.5,90,4\ntest_items_20_run1,3,1,100,3\n")
	writeResults(t, dir, "capacity_results.csv",
		"test_capacity_1_run1,1,1,100,1\ntest_capacity_2_run1,2,1,50,2\n")

	d, out := newTestDriver(t, dir)
	reports := d.Run(context.Background(), Datasets)

	require.Len(t, reports, 3)
	assert.Equal(t, []Status{StatusGenerated, StatusNotFound, StatusGenerated}, statuses(reports))
	assert.Equal(t, 2, reports[0].Groups)
	assert.Len(t, reports[0].Files, 4)
	for _, f := range reports[0].Files {
		assert.FileExists(t, f)
	}

	text := out.String()
	assert.Contains(t, text, "File 'weights_results.csv' not found. Run 'make test-weights' first.")
	assert.Contains(t, text, "Charts and tables for 'items' generated successfully.")
	assert.Contains(t, text, "Charts and tables for 'capacity' generated successfully.")
	assert.Contains(t, text, "Table saved to: "+filepath.Join(d.Exporter.Dir, "items_variation_results_table.md"))
	assert.True(t, strings.HasSuffix(text,
		"\nChart and table generation finished. Check the '"+d.Exporter.Dir+"/' folder.\n"))
}

func TestRun_MalformedInstanceIsolated(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, "items_results.csv", "test_items_10_run1,1,0.5,100,2\n")
	writeResults(t, dir, "weights_results.csv", "test_weights,1,0.5,100,2\n")
	writeResults(t, dir, "capacity_results.csv", "test_capacity_3_run1,1,0.5,100,2\n")

	d, out := newTestDriver(t, dir)
	reports := d.Run(context.Background(), Datasets)

	assert.Equal(t, []Status{StatusGenerated, StatusFailed, StatusGenerated}, statuses(reports))
	require.Error(t, reports[1].Err)
	assert.Contains(t, out.String(), "Error generating charts and tables for 'weights': ")
	assert.Empty(t, reports[1].Files)
}

func TestRun_AllMissing(t *testing.T) {
	d, out := newTestDriver(t, t.TempDir())
	reports := d.Run(context.Background(), Datasets)

	assert.Equal(t, []Status{StatusNotFound, StatusNotFound, StatusNotFound}, statuses(reports))
	assert.Equal(t, 3, strings.Count(out.String(), "not found. Run 'make test-"))
	assert.Contains(t, out.String(), "Chart and table generation finished.")
}

func TestRun_WorkbookAndSummary(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, "items_results.csv", "test_items_10_run1,1,0.5,100,2\ntest_items_10_run2,3,0.5,100,6\n")

	d, out := newTestDriver(t, dir)
	d.Workbook = true
	d.Summary = true
	reports := d.Run(context.Background(), Datasets[:1])

	require.Equal(t, StatusGenerated, reports[0].Status)
	assert.Len(t, reports[0].Files, 5)
	assert.FileExists(t, filepath.Join(d.Exporter.Dir, "items_variation_results_table.xlsx"))
	assert.Contains(t, out.String(), "Workbook saved to: ")
	assert.Contains(t, out.String(), "Aggregated Results for Items Variation")
	assert.Contains(t, out.String(), "N")
}

func TestRun_CancelledSkipsRemaining(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, out := newTestDriver(t, t.TempDir())
	reports := d.Run(ctx, Datasets)

	assert.Equal(t, []Status{StatusSkipped, StatusSkipped, StatusSkipped}, statuses(reports))
	assert.ErrorIs(t, reports[0].Err, context.Canceled)
	assert.NotContains(t, out.String(), "not found")
	assert.Contains(t, out.String(), "Chart and table generation finished.")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "generated", StatusGenerated.String())
	assert.Equal(t, "not found", StatusNotFound.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
