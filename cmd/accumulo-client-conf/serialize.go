// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/accumulo-client-conf/internal/config"
)

// serializeCmd represents the serialize command
var serializeCmd = &cobra.Command{
	Use:   "serialize",
	Short: "Print the resolved configuration as one properties blob",
	Long: `Print the effective stored values as a single properties-format blob,
suitable for handing the configuration to another process. Defaults are not
included. Flags are applied on top of the loaded files.

Example:
  accumulo-client-conf serialize --instance prod --zookeepers zk1:2181,zk2:2181`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), cfg.Serialize())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serializeCmd)
	serializeCmd.Flags().String("instance", "", "Instance name")
	serializeCmd.Flags().String("instance-id", "", "Instance UUID")
	serializeCmd.Flags().String("zookeepers", "", "Comma separated ZooKeeper hosts")
	serializeCmd.Flags().Int("zk-timeout", 0, "ZooKeeper session timeout in seconds")
	serializeCmd.Flags().Bool("ssl", false, "Enable TLS")
	serializeCmd.Flags().String("truststore", "", "Trust store path")
	serializeCmd.Flags().String("keystore", "", "Key store path, enables client certificate authentication")
}

func applyFlags(cmd *cobra.Command, cfg *config.ClientConfiguration) error {
	flags := cmd.Flags()

	if flags.Changed("instance") {
		v, _ := flags.GetString("instance")
		cfg.WithInstance(v)
	}
	if flags.Changed("instance-id") {
		v, _ := flags.GetString("instance-id")
		id, err := uuid.Parse(v)
		if err != nil {
			return fmt.Errorf("invalid --instance-id: %w", err)
		}
		cfg.WithInstanceID(id)
	}
	if flags.Changed("zookeepers") {
		v, _ := flags.GetString("zookeepers")
		cfg.WithZkHosts(v)
	}
	if flags.Changed("zk-timeout") {
		v, _ := flags.GetInt("zk-timeout")
		cfg.WithZkTimeout(v)
	}
	if flags.Changed("ssl") {
		v, _ := flags.GetBool("ssl")
		cfg.WithSSL(v)
	}
	if flags.Changed("truststore") {
		v, _ := flags.GetString("truststore")
		cfg.WithTruststore(v)
	}
	if flags.Changed("keystore") {
		v, _ := flags.GetString("keystore")
		cfg.WithKeystore(v)
	}

	return cfg.Err()
}
