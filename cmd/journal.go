package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"sectionkit/core/config"
	"sectionkit/core/database"
	"sectionkit/core/logger"
	"sectionkit/feature/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var journalLimit int

// journalCmd is the parent command for render journal operations.
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the render journal",
	Long:  `Reads the renders recorded in the journal database and checks its schema.`,
}

// journalRecentCmd prints the most recent renders.
var journalRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Print the most recent renders",
	Long:  `Prints the most recent render records. Outputs a summary by default or the records as JSON with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		svc, l, err := journalService()
		if err != nil {
			return err
		}
		records, err := svc.Recent(cmd.Context(), journalLimit)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}
		for _, r := range records {
			l.Info("Render",
				zap.String("trace_id", r.TraceID),
				zap.String("source", r.Source),
				zap.String("mode", r.Mode),
				zap.Int("operations", r.Operations),
				zap.Int("completions", r.Completions),
				zap.Bool("finished", r.Finished),
			)
		}
		l.Info("Journal read", zap.Int("count", len(records)))
		return nil
	},
}

// journalSchemaCmd compares the journal table with the model.
var journalSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the journal table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := journalService()
		if err != nil {
			return err
		}
		report, err := svc.CheckSchema()
		if err != nil {
			return err
		}
		if !report.Matches() {
			l.Warn("Journal schema mismatch",
				zap.String("table", report.Table),
				zap.Bool("exists", report.Exists),
				zap.Strings("missing", report.Missing),
				zap.Strings("extra", report.Extra),
			)
			return fmt.Errorf("journal table %s does not match the model", report.Table)
		}
		l.Info("Journal schema matches", zap.String("table", report.Table))
		return nil
	},
}

func journalService() (*journal.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection required: %w", err)
	}
	return journal.NewService(db, l), l, nil
}

func init() {
	journalRecentCmd.Flags().IntVar(&journalLimit, "limit", journal.DefaultLimit, "Number of records to print")
	journalRecentCmd.Flags().Bool("json", false, "Output records as JSON")

	journalCmd.AddCommand(journalRecentCmd)
	journalCmd.AddCommand(journalSchemaCmd)
	RootCmd.AddCommand(journalCmd)
}
