// Package main provides the entry point for the greyhound market simulator.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/greyhound-market/internal/config"
	"github.com/yourusername/greyhound-market/internal/logger"
	"github.com/yourusername/greyhound-market/internal/metrics"
	"github.com/yourusername/greyhound-market/internal/report"
	"github.com/yourusername/greyhound-market/internal/rng"
	"github.com/yourusername/greyhound-market/internal/simulation"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type options struct {
	configFile string
	entrants   int
	margin     float64
	logLevel   string
	seed       uint64
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "simulate",
		Short:         "Price a greyhound race and simulate its result",
		Long:          `Generates random win probabilities, prices win, forecast and tricast odds with a bookmaker margin, then draws the first three finishers.`,
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			log := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
			if err := run(cmd.Context(), cfg, log, out); err != nil {
				log.WithError(err).Error("Simulation failed")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to configuration file (optional)")
	flags.IntVar(&opts.entrants, "entrants", config.DefaultEntrants, "Number of entrants in the race")
	flags.Float64Var(&opts.margin, "margin", config.DefaultMargin, "Bookmaker margin applied to win odds")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible run; 0 uses the crypto random source")

	return cmd
}

// loadConfig applies explicitly set flags over file, environment and defaults.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	load := config.LoadWithDefaults
	if opts.configFile != "" {
		load = config.Load
	}
	cfg, err := load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("entrants") {
		cfg.Market.Entrants = opts.entrants
	}
	if flags.Changed("margin") {
		cfg.Market.Margin = opts.margin
	}
	if flags.Changed("log-level") {
		cfg.App.LogLevel = opts.logLevel
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = opts.seed
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	simCfg, err := simulation.FromConfig(cfg)
	if err != nil {
		return err
	}
	if simCfg.RecordMetrics {
		metrics.InitRegistry()
	}

	engine, err := simulation.NewEngine(simCfg, rng.New(cfg.Simulation.Seed), log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"entrants":      simCfg.Entrants,
		"margin":        simCfg.Margin,
		"deterministic": cfg.IsDeterministic(),
	}).Debug("Starting simulation")

	outcome, err := engine.Run(ctx)
	if err != nil {
		return err
	}
	if err := report.WriteConsoleReport(out, outcome.Market, outcome.Result); err != nil {
		return err
	}

	if simCfg.RecordMetrics {
		logMetricsSummary(log)
	}
	return nil
}

func logMetricsSummary(log *logrus.Logger) {
	snapshot, err := metrics.Snapshot()
	if err != nil {
		log.WithError(err).Warn("Failed to gather metrics")
		return
	}
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := logrus.Fields{}
	for _, name := range names {
		fields[name] = snapshot[name]
	}
	log.WithFields(fields).Info("Metrics summary")
}
