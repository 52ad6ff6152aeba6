package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"scrawl/internal/history"
	"scrawl/internal/logger"
)

func newEmitCommand(ctx *commandContext) *cobra.Command {
	var levelFlag string
	var colorFlag string
	var suffixFlag string
	var replaceFlag string
	var showTwiceFlag time.Duration
	var noBreakFlag bool
	var consoleOnlyFlag bool
	var fileOnlyFlag bool

	cmd := &cobra.Command{
		Use:   "emit [text...]",
		Short: "Log a message through the pipeline",
		Long: "Emit logs its arguments as a single message, or each stdin line as its own\n" +
			"message when no arguments are given. Output goes to the console and the\n" +
			"daily log file according to the configured thresholds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(levelFlag)
			if err != nil {
				return err
			}
			if consoleOnlyFlag && fileOnlyFlag {
				return fmt.Errorf("--console-only and --file-only are mutually exclusive")
			}

			log, err := logger.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			var store *history.Store
			if cfg.History.Enabled {
				store, err = history.Open(cfg.History.Path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warn: history unavailable: %v\n", err)
				} else {
					log.Hub().AddSink(store)
				}
			}
			defer func() {
				log.WaitForEmptyQueue()
				log.Stop()
				if store != nil {
					_ = store.Close()
				}
			}()

			opts := entryOptions(colorFlag, suffixFlag, replaceFlag, showTwiceFlag, noBreakFlag, consoleOnlyFlag, fileOnlyFlag)

			if len(args) > 0 {
				log.Log(strings.Join(args, " "), level, opts...)
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				log.Log(scanner.Text(), level, opts...)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&levelFlag, "level", "l", "info", "Severity: debug, verbose, info, warning, error, or force")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Console color override (red, green, hi-cyan, ...)")
	cmd.Flags().StringVar(&suffixFlag, "file-suffix", "", "Auxiliary log file suffix; trailing + also writes the main file")
	cmd.Flags().StringVar(&replaceFlag, "replace", "", "Glob pattern enabling replace-last-line console output")
	cmd.Flags().DurationVar(&showTwiceFlag, "show-twice", 0, "Suppress identical messages within this window (e.g. 2s)")
	cmd.Flags().BoolVar(&noBreakFlag, "no-break", false, "Keep the console cursor on the written line")
	cmd.Flags().BoolVar(&consoleOnlyFlag, "console-only", false, "Skip the file sink")
	cmd.Flags().BoolVar(&fileOnlyFlag, "file-only", false, "Skip the console sink")

	return cmd
}

func entryOptions(color, suffix, replace string, showTwice time.Duration, noBreak, consoleOnly, fileOnly bool) []logger.Option {
	var opts []logger.Option
	if color != "" {
		opts = append(opts, logger.WithColor(color))
	}
	if suffix != "" {
		opts = append(opts, logger.WithFileSuffix(suffix))
	}
	if replace != "" {
		opts = append(opts, logger.WithReplaceWildcard(replace))
	}
	if showTwice > 0 {
		opts = append(opts, logger.WithShowTwiceTimeout(showTwice))
	}
	if noBreak {
		opts = append(opts, logger.WithoutBreak())
	}
	if consoleOnly {
		opts = append(opts, logger.ConsoleOnly())
	}
	if fileOnly {
		opts = append(opts, logger.FileOnly())
	}
	return opts
}
