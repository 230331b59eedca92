// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/accumulo-client-conf/internal/config"
	"github.com/MKhiriev/accumulo-client-conf/internal/logger"
)

var (
	overrideFile string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "accumulo-client-conf",
	Short: "Inspect Accumulo client configuration",
	Long: `Inspect the Accumulo client configuration resolved from the search path
or from an explicit override file.

Search path, highest priority first:
  $ACCUMULO_CLIENT_CONF_PATH entries, or
  ~/.accumulo/config
  $ACCUMULO_CONF_DIR/client.conf (or $ACCUMULO_HOME/conf/client.conf)
  /etc/accumulo/client.conf`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&overrideFile, "config", "c", "", "Properties file used instead of the search path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log which files are loaded")
}

func newLogger() *logger.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return logger.NewLogger("accumulo-client-conf", level)
}

func newLoader() *config.Loader {
	return config.NewLoader(config.OSEnvironment(), newLogger())
}

func loadConfiguration() (*config.ClientConfiguration, error) {
	return newLoader().LoadOverride(overrideFile)
}
