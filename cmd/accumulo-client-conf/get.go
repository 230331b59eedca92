// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/accumulo-client-conf/internal/config"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of one property",
	Long: `Print the effective value of one property. Recognized properties fall back
to their default; other keys are printed only if a source defines them.

Example:
  accumulo-client-conf get instance.zookeeper.host`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		value, err := lookup(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func lookup(cfg *config.ClientConfiguration, key string) (string, error) {
	if p, ok := config.LookupByKey(key); ok {
		if v, ok := cfg.Get(p); ok {
			return v, nil
		}
		return "", fmt.Errorf("%w: %s has no value and no default", config.ErrNotFound, key)
	}

	if v, ok := cfg.GetKey(key); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown property %s", config.ErrNotFound, key)
}
