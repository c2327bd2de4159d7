// cmd/knapbench/root.go
package knapbench

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/knapbench/internal/config"
	"github.com/mwiater/knapbench/internal/logging"
	"github.com/mwiater/knapbench/internal/pipeline"
)

// cfgFile is the optional config file passed with --config.
var cfgFile string

// settings resolves every key from flags, KNAPBENCH_* env and the config file.
var settings = config.New()

// rootCmd is the base Cobra command. Run with no subcommand it processes
// every dataset and writes tables and charts.
var rootCmd = &cobra.Command{
	Use:   "knapbench",
	Short: "Aggregate knapsack solver benchmarks into tables and charts",
	Long: `knapbench reads the Simple vs Prob solver results for the items, weights and capacity sweeps,
groups them by the parameter encoded in each instance name, and writes a markdown table and three
charts (time, optimality, speedup) per dataset. A missing or broken dataset never stops the others.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPipeline,
}

// Execute runs the root Cobra command and all registered subcommands.
// Interrupts cancel the run between datasets. Any returned error is printed
// once to stderr, keeping stdout for the report, and the process exits
// non-zero.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (yaml or json)")
	flags.String("results-dir", "results", "directory holding the *_results.csv files")
	flags.StringP("output-dir", "o", "plots", "directory for tables and charts")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("workbook", false, "also write each table as an xlsx workbook")
	flags.Bool("summary", false, "print each aggregated table to the terminal")
	flags.Bool("debug", false, "debug logging and dump the resolved config")

	bindFlags(settings, rootCmd)
}

// bindFlags ties each persistent flag to its config key.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	keys := map[string]string{
		config.KeyResultsDir: "results-dir",
		config.KeyOutputDir:  "output-dir",
		config.KeyLogLevel:   "log-level",
		config.KeyLogFormat:  "log-format",
		config.KeyWorkbook:   "workbook",
		config.KeySummary:    "summary",
		config.KeyDebug:      "debug",
	}
	for key, name := range keys {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// loadConfig resolves the configuration and builds the logger for cmd.
// Logs go to stderr so stdout carries only the report.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(settings, cfgFile)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if cfg.Debug {
		level = "debug"
	}
	logger := logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, Format: cfg.Log.Format})
	if cfg.Debug {
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}
	return cfg, logger, nil
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	driver := pipeline.NewDriver(cfg.ResultsDir, cfg.OutputDir, cmd.OutOrStdout(), logger)
	driver.Exporter.ChartWidth = cfg.Chart.Width
	driver.Exporter.ChartHeight = cfg.Chart.Height
	driver.Workbook = cfg.Workbook
	driver.Summary = cfg.Summary

	reports := driver.Run(cmd.Context(), pipeline.Datasets)
	for _, r := range reports {
		logger.Debug("Dataset outcome",
			slog.String("dataset", r.Dataset.ID),
			slog.String("status", r.Status.String()),
			slog.Int("files", len(r.Files)))
	}
	return nil
}
