// cmd/knapbench/root_test.go
package knapbench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs rootCmd with args from a clean flag state and returns stdout
// and stderr separately.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile = ""
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	return out.String(), errOut.String(), err
}

func TestRootCmd(t *testing.T) {
	stdout, stderr, err := execute(t, "nonexistent")
	if err == nil {
		t.Fatal("Expected an error for a nonexistent command, but got none")
	}

	expected := "unknown command \"nonexistent\" for \"knapbench\""
	if !strings.Contains(err.Error(), expected) {
		t.Errorf("Expected error to contain '%s', but got '%s'", expected, err.Error())
	}
	// Execute prints the error once; cobra itself stays quiet.
	if stdout != "" || stderr != "" {
		t.Errorf("Expected no command output, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
		if c.Name() == "list" {
			sub := map[string]bool{}
			for _, sc := range c.Commands() {
				sub[sc.Name()] = true
			}
			if !sub["datasets"] || !sub["commands"] {
				t.Fatalf("list subcommands missing: %v", sub)
			}
		}
	}
	if !have["list"] {
		t.Fatalf("missing subcommand list")
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			if sc.Name() == "help" || sc.Name() == "completion" {
				continue
			}
			check(sc)
		}
	}
	check(rootCmd)
}

func TestListCommands_PrintsTree(t *testing.T) {
	var buf bytes.Buffer
	listAllCommands(&buf, rootCmd)
	out := buf.String()
	assert.Contains(t, out, "Commands and Subcommands:")
	assert.Contains(t, out, "knapbench list datasets")
	assert.Contains(t, out, "knapbench list commands")
}

func TestListDatasets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items_results.csv"), []byte("Instance\n"), 0o644))

	stdout, _, err := execute(t, "list", "datasets", "--results-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "items_results.csv")
	assert.Contains(t, stdout, "make test-capacity")
	assert.Equal(t, 1, strings.Count(stdout, "present"))
	assert.Equal(t, 2, strings.Count(stdout, "missing"))
}

func TestRun_GeneratesOutputs(t *testing.T) {
	resultsDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "plots")
	csv := "Instance,Avg_Simple_Time,Avg_Prob_Time,Optimal_Percentage,Avg_Time_Ratio\n" +
		"test_items_10_run1,1.0,0.5,100,2\n" +
		"test_items_10_run2,2.0,0.5,90,4\n" +
		"test_items_20_run1,3.0,1.0,100,3\n"
	require.NoError(t, os.WriteFile(filepath.Join(resultsDir, "items_results.csv"), []byte(csv), 0o644))

	stdout, _, err := execute(t, "--results-dir", resultsDir, "--output-dir", outDir, "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Charts and tables for 'items' generated successfully.")
	assert.Contains(t, stdout, "File 'weights_results.csv' not found. Run 'make test-weights' first.")
	assert.Contains(t, stdout, "File 'capacity_results.csv' not found. Run 'make test-capacity' first.")
	assert.Contains(t, stdout, "Check the '"+outDir+"/' folder.")

	table, err := os.ReadFile(filepath.Join(outDir, "items_variation_results_table.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(table), "### Aggregated Results for Items Variation\n"))
	for _, name := range []string{
		"items_variation_avg_time_with_std_vs_n.png",
		"items_variation_optimality_with_std_vs_n.png",
		"items_variation_speedup_with_std_vs_n.png",
	} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
}

func TestRun_InvalidConfigFails(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "plots")
	stdout, stderr, err := execute(t, "--output-dir", outDir, "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Log.Format")
	assert.NotContains(t, stdout, "generation finished")
	assert.NotContains(t, stdout, "invalid config")
	assert.NotContains(t, stderr, "Error:")
	assert.NoDirExists(t, outDir)
}

func TestListCmd_DescribesDatasets(t *testing.T) {
	assert.Contains(t, listCmd.Long, "list datasets")
	assert.Contains(t, listCmd.Long, "results directory")
}
