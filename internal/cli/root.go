// Package cli implements the real-return command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/real-return/internal/config"
)

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	cmd := NewRootCmd(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd constructs the real-return command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "real-return",
		Short: "Real vs. nominal return calculator",
		Long: `real-return computes inflation-adjusted investment returns and projects
purchasing power over time, via an interactive CLI or an HTTP JSON API.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(newCalcCmd(opts))
	cmd.AddCommand(newServeCmd(opts, version))
	cmd.AddCommand(newExamplesCmd(opts))

	return cmd
}

// load resolves the application configuration and logger for a command run.
func (o *rootOptions) load() (*config.Configuration, *zap.Logger, error) {
	conf, err := config.LoadConfiguration(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(conf.Logging, o.logLevel)
	if err != nil {
		return nil, nil, err
	}

	return conf, logger, nil
}
