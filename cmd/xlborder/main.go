// Package main provides the CLI entry point for xlborder.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rf := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "xlborder",
		Short: "Draw cell borders on Excel ranges",
		Long: `xlborder draws borders on rectangular ranges of Excel worksheets.
Borders are described by logical position (outline, inside, top, inner
horizontal, ...) and resolved to the four physical edges of each cell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(rf.logLevel, rf.logFormat, stderr)
			if err != nil {
				return err
			}
			rf.logger = logger
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rf.logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(newApplyCmd(rf), newPlanCmd(rf), newInspectCmd(rf))
	return rootCmd
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger creates a new slog.Logger based on the provided level and format.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	level, ok := logLevels[levelStr]
	if !ok {
		return nil, fmt.Errorf("invalid --log-level %q (must be debug, info, warn or error)", levelStr)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch formatStr {
	case "text":
		return slog.New(slog.NewTextHandler(outW, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(outW, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (must be text or json)", formatStr)
	}
}
