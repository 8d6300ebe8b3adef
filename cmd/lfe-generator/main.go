// Package main provides the CLI entrypoint for lfe-generator.
//
// lfe-generator turns a YAML log layout into a Go log format enforcer:
//   - generate writes the enforcer source, optionally type-checking it
//   - inspect parses a Go file and resolves type and method lookups
//   - init writes a starter configuration file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration

	// Logger
	logger = zap.NewNop()
)

// newRootCmd builds the base command with all subcommands attached.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lfe-generator",
		Short: "Generate Go log format enforcers from a declared field layout",
		Long: `lfe-generator generates a Go file declaring a LogFormatEnforcer whose
entries always render their fields in the declared order and layout.

The layout (package, fields, separators, levels) is read from a YAML file.
Generated code only depends on the standard library (log/slog).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zapConfig := zap.NewProductionConfig()
			if verbose {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error

			logger, err = zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
