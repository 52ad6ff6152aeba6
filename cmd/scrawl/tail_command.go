package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrawl/internal/history"
	"scrawl/internal/logger"
)

func newTailCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int
	var sessionFlag string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show recent console output from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled; set history.enabled = true in the config")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			events, err := fetchEvents(cmd, store, sessionFlag, limitFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No recorded events")
				return nil
			}
			for _, evt := range events {
				fmt.Fprintln(out, evt.Formatted)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 50, "Maximum number of events to show")
	cmd.Flags().StringVar(&sessionFlag, "session", "", "Only show events from this session id")

	return cmd
}

func fetchEvents(cmd *cobra.Command, store *history.Store, session string, limit int) ([]logger.Event, error) {
	if session != "" {
		return store.BySession(cmd.Context(), session, limit)
	}
	return store.Tail(cmd.Context(), limit)
}
