package cmd

import (
	"fmt"

	"sectionkit/feature/scenario"

	"github.com/spf13/cobra"
)

// diffCmd prints the section batch of a scenario without rendering.
var diffCmd = &cobra.Command{
	Use:   "diff <scenario.yaml>",
	Short: "Print the section batch between the initial and final layout of a scenario",
	Long: `Applies the set_group and set_items steps of a scenario to its initial groups and
diffs the sections by identity. Nothing is rendered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		plan, err := scenario.NewPlan(sc)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "before: %v\n", plan.Before)
		fmt.Fprintf(out, "after:  %v\n", plan.After)
		fmt.Fprintf(out, "counts: %v\n", plan.Counts)
		fmt.Fprintf(out, "batch:  %s\n", plan.Updates)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(diffCmd)
}
