package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"sectionkit/core/config"
	"sectionkit/core/logger"
	"sectionkit/feature/scenario"

	"github.com/spf13/cobra"
)

var (
	simulateJSON   bool
	simulateNoDiff bool
)

// simulateCmd replays a scenario file against a headless widget.
var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay a scenario against a headless widget",
	Long: `Replays the steps of a YAML scenario with a real section adapter rendering into a
headless collection view. Prints every render, the order in which completions fired and
a unified diff of the layout before and after.

Examples:
  # Human readable report
  sectionkit simulate scenarios/s0.yaml

  # Full report as JSON
  sectionkit simulate scenarios/s0.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		report, err := scenario.NewRunner(cfg.Adapter, logg).Run(sc)
		if err != nil {
			return fmt.Errorf("failed to replay scenario: %w", err)
		}

		out := cmd.OutOrStdout()
		if simulateJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		printReport(out, report, !simulateNoDiff)
		return nil
	},
}

func printReport(out io.Writer, report *scenario.Report, withDiff bool) {
	fmt.Fprintf(out, "scenario %s: %d steps, %d renders\n", report.Name, len(report.Steps), len(report.Renders))
	for i, r := range report.Renders {
		fmt.Fprintf(out, "  render %d: %s animated=%t finished=%t completions=%d %s\n",
			i+1, r.Mode, r.Animated, r.Finished, r.Completions, r.Operations)
	}
	fmt.Fprintln(out, "completions:")
	for _, c := range report.Completions {
		fmt.Fprintf(out, "  %s\n", c)
	}
	if report.Flushed > 0 {
		fmt.Fprintf(out, "flushed %d deferred frames after the last step\n", report.Flushed)
	}
	if !withDiff {
		return
	}
	if report.Diff == "" {
		fmt.Fprintln(out, "layout unchanged")
		return
	}
	fmt.Fprint(out, report.Diff)
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "Print the full report as JSON")
	simulateCmd.Flags().BoolVar(&simulateNoDiff, "no-diff", false, "Omit the layout diff")
	RootCmd.AddCommand(simulateCmd)
}
