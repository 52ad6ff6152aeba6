package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrawl/internal/logger"
)

func newPruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove dated log files older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cfg.RetentionDays <= 0 {
				fmt.Fprintln(out, "Retention is disabled (retention_days = 0)")
				return nil
			}
			removed, err := logger.CleanupOldLogs(cfg.LogDir, cfg.RetentionDays)
			if err != nil {
				return fmt.Errorf("prune logs: %w", err)
			}
			fmt.Fprintf(out, "Removed %d log file(s) older than %d days\n", removed, cfg.RetentionDays)
			return nil
		},
	}
}
