package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goserg/elodiff/internal/config"
	"github.com/goserg/elodiff/internal/estimate"
	"github.com/goserg/elodiff/internal/logger"
	"github.com/goserg/elodiff/internal/prompt"
	"github.com/goserg/elodiff/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

type options struct {
	configFile string
	confidence float64
	logLevel   string
}

func newRootCmd(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "elodiff",
		Short: "Estimate the Elo difference from a win/draw/loss tally",
		Long: `Reads the number of wins, draws and losses from standard input and prints
the implied Elo difference together with its confidence interval.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return estimateTally(cfg, stdin, stdout, logger.New(stderr, cfg.Log.Level))
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to a TOML configuration file")
	cmd.Flags().Float64Var(&opts.confidence, "confidence", estimate.DefaultConfidence, "Confidence level of the interval, in (0, 1)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warning, error)")
	return cmd
}

func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	var overrides []config.Override
	if cmd.Flags().Changed("confidence") {
		overrides = append(overrides, func(cfg *config.Config) {
			cfg.Estimator.Confidence = opts.confidence
		})
	}
	if cmd.Flags().Changed("log-level") {
		overrides = append(overrides, func(cfg *config.Config) {
			cfg.Log.Level = opts.logLevel
		})
	}
	cfg, err := config.New(opts.configFile, overrides...)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func estimateTally(cfg config.Config, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"confidence": cfg.Estimator.Confidence,
		"log_level":  cfg.Log.Level,
	}).Debug("config loaded")

	tally, err := prompt.Read(stdin, stdout)
	if err != nil {
		return err
	}
	est, err := estimate.Estimate(tally, cfg.Estimator.Confidence)
	if err != nil {
		log.WithError(err).Debug("estimate failed")
		return err
	}
	log.WithFields(logrus.Fields{
		"games": est.Games,
		"score": est.Score,
		"elo":   est.EloDiff,
		"lower": est.Lower,
		"upper": est.Upper,
		"los":   est.LOS,
	}).Debug("estimated")

	return report.Write(stdout, est)
}
