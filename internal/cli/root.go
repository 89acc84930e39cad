// Package cli implements the stnctl commands.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	Format   string // "text" | "json"
	Metrics  bool

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of stnctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stnctl",
		Short: "Inspect simple temporal networks",
		Long: `stnctl loads a temporal network description (YAML) and checks its
consistency, queries distances between timepoints, or reduces it to a
minimal dispatchable network.`,
		SilenceErrors: true, // main prints the error once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return commandError("invalid --format",
					fmt.Errorf("%q is not one of %v", opts.Format, ValidFormats))
			}
			level, err := parseLevel(opts.LogLevel)
			if err != nil {
				return commandError("invalid --log-level", err)
			}
			// Logs go to stderr to keep stdout parseable
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.SetFlagErrorFunc(usageError)

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false, "print Prometheus metrics after the command")

	// Add subcommands
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))
	cmd.AddCommand(NewDispatchCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(s)))

	return level, err
}
