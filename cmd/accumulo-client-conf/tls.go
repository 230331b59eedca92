// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/accumulo-client-conf/internal/adapter"
	"github.com/MKhiriev/accumulo-client-conf/internal/config"
)

// tlsCmd represents the tls command
var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "Load the configured trust and key stores",
	Long: `Build the TLS configuration a session would use and report what was
loaded. Fails if a configured store cannot be read or decoded.

Supported store types: pem, pkcs12 (p12, pfx).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		tlsCfg, err := adapter.NewTransportAdapter(config.OSEnvironment(), newLogger()).TLSConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to build TLS configuration: %w", err)
		}

		out := cmd.OutOrStdout()
		if tlsCfg == nil {
			fmt.Fprintln(out, "TLS disabled")
			return nil
		}

		fmt.Fprintln(out, "TLS enabled")
		fmt.Fprintf(out, "client certificates: %d\n", len(tlsCfg.Certificates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tlsCmd)
}
