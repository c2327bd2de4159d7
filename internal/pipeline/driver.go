// internal/pipeline/driver.go
// Package: pipeline
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/knapbench/internal/aggregate"
	"github.com/mwiater/knapbench/internal/export"
	"github.com/mwiater/knapbench/internal/results"
)

// Status is the outcome of one dataset.
type Status int

const (
	StatusGenerated Status = iota // all outputs written
	StatusNotFound                // results file absent
	StatusFailed                  // load, derive or export error
	StatusSkipped                 // run cancelled before the dataset started
)

func (s Status) String() string {
	switch s {
	case StatusGenerated:
		return "generated"
	case StatusNotFound:
		return "not found"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Report records what happened to one dataset.
type Report struct {
	Dataset Dataset
	Status  Status
	Files   []string
	Groups  int
	Err     error
}

// Driver runs load -> derive -> aggregate -> export for each dataset and
// prints progress to Out. One dataset's failure never stops the others.
type Driver struct {
	ResultsDir string
	Exporter   *export.Exporter
	Workbook   bool // also write an xlsx copy of each table
	Summary    bool // print each aggregated table to Out
	Out        io.Writer
	Logger     *slog.Logger

	styles styles
}

type styles struct {
	ok, warn, fail, info lipgloss.Style
}

// NewDriver wires a driver writing outputs into outputDir.
func NewDriver(resultsDir, outputDir string, out io.Writer, logger *slog.Logger) *Driver {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		ResultsDir: resultsDir,
		Exporter:   export.NewExporter(outputDir, logger),
		Out:        out,
		Logger:     logger,
	}
}

func (d *Driver) initStyles() {
	r := lipgloss.NewRenderer(d.Out)
	d.styles = styles{
		ok:   r.NewStyle().Foreground(lipgloss.Color("46")),
		warn: r.NewStyle().Foreground(lipgloss.Color("214")),
		fail: r.NewStyle().Foreground(lipgloss.Color("9")),
		info: r.NewStyle().Foreground(lipgloss.Color("86")),
	}
}

// Run processes datasets in order and returns one report per dataset. It
// checks ctx between datasets; those not started are reported as skipped.
func (d *Driver) Run(ctx context.Context, datasets []Dataset) []Report {
	d.initStyles()

	reports := make([]Report, 0, len(datasets))
	for _, ds := range datasets {
		if err := ctx.Err(); err != nil {
			d.Logger.Warn("Run cancelled, skipping dataset",
				slog.String("dataset", ds.ID),
				slog.String("error", err.Error()))
			reports = append(reports, Report{Dataset: ds, Status: StatusSkipped, Err: err})
			continue
		}
		reports = append(reports, d.runOne(ds))
	}

	fmt.Fprintln(d.Out)
	fmt.Fprintln(d.Out, d.styles.info.Render(fmt.Sprintf(
		"Chart and table generation finished. Check the '%s/' folder.", d.Exporter.Dir)))
	return reports
}

func (d *Driver) runOne(ds Dataset) Report {
	rep := Report{Dataset: ds}
	path := ds.Path(d.ResultsDir)
	logger := d.Logger.With(slog.String("dataset", ds.ID))
	logger.Info("Processing dataset", slog.String("path", path))

	agg, files, err := d.process(ds, path, logger)
	rep.Files = files
	switch {
	case errors.Is(err, fs.ErrNotExist):
		rep.Status = StatusNotFound
		rep.Err = err
		logger.Warn("Results file not found", slog.String("path", path))
		fmt.Fprintln(d.Out, d.styles.warn.Render(fmt.Sprintf(
			"File '%s' not found. Run 'make %s' first.", ds.File, ds.MakeTarget)))
	case err != nil:
		rep.Status = StatusFailed
		rep.Err = err
		logger.Error("Dataset failed", slog.String("error", err.Error()))
		fmt.Fprintln(d.Out, d.styles.fail.Render(fmt.Sprintf(
			"Error generating charts and tables for '%s': %v", ds.ID, err)))
	default:
		rep.Status = StatusGenerated
		rep.Groups = len(agg.Rows)
		if d.Summary {
			fmt.Fprintln(d.Out, renderSummary(d.Out, ds, agg))
		}
		logger.Info("Dataset generated", slog.Int("groups", rep.Groups), slog.Int("files", len(files)))
		fmt.Fprintln(d.Out, d.styles.ok.Render(fmt.Sprintf(
			"Charts and tables for '%s' generated successfully.", ds.ID)))
	}
	return rep
}

// process returns the aggregated table and every file written, including
// those written before a later step failed.
func (d *Driver) process(ds Dataset, path string, logger *slog.Logger) (*aggregate.Table, []string, error) {
	tbl, err := results.Load(path, ds.Column)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded results", slog.Int("rows", tbl.Len()))

	agg := aggregate.Aggregate(tbl)
	logger.Debug("Aggregated results", slog.Int("groups", len(agg.Rows)))

	var files []string
	tablePath, err := d.Exporter.WriteTable(agg, export.TableFileName(ds.TitlePrefix), export.TableTitle(ds.TitlePrefix))
	if err != nil {
		return agg, files, err
	}
	files = append(files, tablePath)
	fmt.Fprintf(d.Out, "Table saved to: %s\n", tablePath)

	if d.Workbook {
		wbPath, err := d.Exporter.WriteWorkbook(agg, export.WorkbookFileName(ds.TitlePrefix), export.TableTitle(ds.TitlePrefix))
		if err != nil {
			return agg, files, err
		}
		files = append(files, wbPath)
		fmt.Fprintf(d.Out, "Workbook saved to: %s\n", wbPath)
	}

	charts, err := d.Exporter.WriteCharts(agg, ds.TitlePrefix)
	files = append(files, charts...)
	if err != nil {
		return agg, files, err
	}
	return agg, files, nil
}
