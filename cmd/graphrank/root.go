// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/graphrank/internal/config"
	"github.com/katalvlaran/graphrank/internal/dispatch"
	"github.com/katalvlaran/graphrank/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries state resolved in PersistentPreRunE to the subcommands.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
	flags  config.Config // raw flag values, applied only when changed
	env    string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "graphrank [input]",
		Short: "Rank weighted graphs by total shortest-path distance from vertex 0",
		Long: "graphrank reads an \"N K\" header followed by AggiungiGrafo/TopK commands\n" +
			"and prints, for each TopK, the ids of the K best graphs seen so far.\n" +
			"The input is a file path or - for standard input.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Flags(), cmd.ErrOrStderr(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags(), a)
	addRunFlags(rootCmd.Flags(), a)
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

func addGlobalFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVar(&a.env, "env-file", ".env", "Optional dotenv file with GRAPHRANK_* settings")
	fs.StringVar(&a.flags.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error, disabled)")
	fs.StringVar(&a.flags.LogFormat, "log-format", "console", "Log format (console, json)")
}

func addRunFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVar(&a.flags.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (empty disables)")
	fs.BoolVar(&a.flags.Summary, "summary", false, "Print a leaderboard table to stderr when the input ends")
}

// init resolves configuration (env < .env < flags), validates it and builds the logger.
func (a *app) init(fs *pflag.FlagSet, logOut io.Writer, args []string) error {
	cfg, err := config.Load(a.env)
	if err != nil {
		return err
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = a.flags.MetricsAddr
	}
	if fs.Changed("summary") {
		cfg.Summary = a.flags.Summary
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logOut})
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

func (a *app) run(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, closeIn, err := openInput(a.cfg.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeIn()

	if a.cfg.MetricsAddr != "" {
		shutdown, err := serveMetrics(a.cfg.MetricsAddr, a.logger)
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
	}

	d := dispatch.New(in, cmd.OutOrStdout(), dispatch.WithLogger(a.logger))
	runErr := d.Run(ctx)

	st := d.Stats()
	a.logger.Info().
		Int("submitted", st.Submitted).
		Int("admitted", st.Admitted).
		Int("reports", st.Reports).
		Msg("input finished")

	if a.cfg.Summary && d.Ranking() != nil {
		if err := printSummary(cmd.ErrOrStderr(), d.Ranking(), st); err != nil && runErr == nil {
			runErr = err
		}
	}

	return runErr
}

// openInput resolves "-" to stdin and anything else to a file.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == config.StdinInput {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
