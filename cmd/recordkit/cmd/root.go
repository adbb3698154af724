/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/recordkit/pkg/config"
)

var (
	cfgPath  string
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recordkit",
	Short: "RecordKit - record lifecycle toolkit",
	Long: `RecordKit manages fixed-shape records (numeric id, bounded name,
floating-point value) with an explicit create/present/release lifecycle
and comparator-based sorting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = resolveConfig()
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}

		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(lvl).
			With().Timestamp().Logger()
		return nil
	},
}

// resolveConfig loads the config file when one is present; an explicit
// --config path must exist, the default path is optional.
func resolveConfig() (*config.Config, error) {
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return loaded, nil
	}

	defaultPath := config.GetDefaultConfigPath()
	if config.ConfigExists(defaultPath) {
		loaded, err := config.LoadConfig(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return loaded, nil
	}

	return config.DefaultConfig(), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}
