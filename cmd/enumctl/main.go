// SPDX-License-Identifier: MIT

// Command enumctl inspects enum catalogs and generates Go declarations from them.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ManuGH/enumkit/internal/config"
	"github.com/ManuGH/enumkit/internal/log"
	"github.com/ManuGH/enumkit/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by every subcommand.
type options struct {
	file     string
	logLevel string
	silent   bool
}

func rootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{silent: cfg.Silent}

	cmd := &cobra.Command{
		Use:           "enumctl",
		Short:         "Inspect enum catalogs and generate Go declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log.Configure(log.Config{
				Level:   opts.logLevel,
				Output:  cmd.ErrOrStderr(),
				Service: "enumctl",
			})
			logger := log.Derive(func(c *zerolog.Context) {
				*c = c.Str(log.FieldPath, opts.file)
			})
			cmd.SetContext(log.ContextWithLogger(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", cfg.Catalog, "catalog file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(
		checkCmd(opts),
		keysCmd(opts),
		lookupCmd(opts),
		setCmd(opts),
		fmtCmd(opts),
		genCmd(opts),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "enumctl %s\n", version.String())
		},
	}
}
