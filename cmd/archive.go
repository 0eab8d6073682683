package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"sectionkit/core/config"
	"sectionkit/core/logger"
	"sectionkit/core/storage"
	"sectionkit/feature/archive"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for archive purge command
	dryRunPurge bool
	yesConfirm  bool
)

// archiveCmd is the parent command for snapshot archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect and clean the snapshot archive",
	Long:  `Lists and removes the layout snapshots stored in the archive bucket.`,
}

// archiveListCmd lists archived snapshots.
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := archiveService()
		if err != nil {
			return err
		}
		entries, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			l.Info("Snapshot",
				zap.String("name", e.Name),
				zap.Int64("size", e.Size),
				zap.Time("last_modified", e.LastModified),
			)
		}
		l.Info("Archive listed", zap.Int("count", len(entries)))
		return nil
	},
}

// archivePurgeCmd removes every archived snapshot.
var archivePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every archived snapshot",
	Long: `Removes every snapshot stored in the archive bucket.

Examples:
  # Show what would be removed
  sectionkit archive purge --dry-run

  # Purge with interactive confirmation
  sectionkit archive purge

  # Purge with auto-confirm (non-interactive)
  sectionkit archive purge --yes`,
	RunE: runArchivePurge,
}

func init() {
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archivePurgeCmd)

	archivePurgeCmd.Flags().BoolVar(&dryRunPurge, "dry-run", false, "List the snapshots without removing them")
	archivePurgeCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(archiveCmd)
}

func archiveService() (*archive.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return archive.NewService(client, cfg.Storage.Bucket, l), l, nil
}

func runArchivePurge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	svc, l, err := archiveService()
	if err != nil {
		return err
	}

	entries, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		l.Info("Archive is empty, nothing to purge")
		return nil
	}
	l.Info("Snapshots to purge", zap.Int("count", len(entries)))

	if dryRunPurge {
		for _, e := range entries {
			l.Info("Would remove", zap.String("name", e.Name))
		}
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	removed, err := svc.Purge(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge archive: %w", err)
	}
	l.Info("Archive purged", zap.Int("removed", removed))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
