// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cli implements the golam command line interface
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/wr1/golam/config"
	"github.com/wr1/golam/logging"
)

// Options holds the global options shared by all commands
type Options struct {
	EnvFile  string           // .env file
	NumFmt   string           // format of matrix entries
	LogLevel logging.Level    // resolved log level
	Settings *config.Settings // settings from the environment
}

// Execute runs the golam command with args, writing reports to stdout.
// Logs go through the handler of logger at the level of the settings; if logger
// is nil, a logger writing to stderr is created
func Execute(args []string, stdout io.Writer, logger *slog.Logger) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	cmd := newRootCommand(new(Options), logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	ctx := context.Background()
	if logger != nil {
		ctx = context.WithValue(ctx, loggerKey{}, logger)
	}
	return cmd.ExecuteContext(ctx)
}

// newRootCommand allocates the root command and its subcommands; injected may be nil
func newRootCommand(opts *Options, injected *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "golam",
		Short:         "golam computes laminate stiffness with Classical Lamination Theory",
		Long:          "golam computes the A, B and D stiffness matrices of layered composite laminates and writes Nastran PCOMP cards.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(opts.EnvFile)
			if err != nil {
				return err
			}
			opts.Settings = settings
			level := settings.LogLevel
			if f := cmd.Flag("log-level"); f != nil && f.Changed {
				level = f.Value.String()
			}
			if f := cmd.Flag("numfmt"); f == nil || !f.Changed {
				opts.NumFmt = settings.NumFmt
			} else if err = config.CheckNumFmt(opts.NumFmt); err != nil {
				return err
			}
			opts.LogLevel = logging.ParseLevel(level)
			var logger *slog.Logger
			if injected == nil {
				logger = logging.NewLogger(cmd.ErrOrStderr(), opts.LogLevel)
			} else {
				logger = logging.WithLevel(injected, opts.LogLevel)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", opts.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Path to .env file (default: optional ./.env)")
	cmd.PersistentFlags().StringVar(&opts.NumFmt, "numfmt", "%.4e", "Format of matrix entries (overrides GOLAM_NUMFMT)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newAbdCommand(opts),
		newCouplingCommand(opts),
		newPcompCommand(opts),
		newMaterialsCommand(opts),
	)
	return cmd
}

// loggerKey is the context key of the logger
type loggerKey struct{}

// LoggerFromContext returns the logger stored in ctx or a default one
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
