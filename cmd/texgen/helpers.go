package main

import (
	"fmt"

	"github.com/aellingwood/texgen/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loadConfig resolves settings from the environment and the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing plain text lines to the command's
// standard output.
func newLogger(cmd *cobra.Command, cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.OutOrStdout())
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
