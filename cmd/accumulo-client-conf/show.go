// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/accumulo-client-conf/internal/config"
)

const (
	sourceDefault = "default"
	maskedValue   = "****"
)

// attribute is one row of `show` output.
type attribute struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Set         bool   `json:"set"`
	Source      string `json:"source"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show client properties, their effective values and sources",
	Long: `Show every recognized client property with its effective value and the
source it came from: "overlay", a file path, or "default".

Passwords are masked.

Example:
  accumulo-client-conf show
  accumulo-client-conf show --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfiguration()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		attrs := collectAttributes(cfg)
		if output == "json" {
			return writeJSON(cmd.OutOrStdout(), attrs)
		}
		return writeText(cmd.OutOrStdout(), attrs)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func collectAttributes(cfg *config.ClientConfiguration) []attribute {
	props := config.ClientProperties()
	attrs := make([]attribute, 0, len(props))
	for _, p := range props {
		value, set := cfg.Get(p)
		source, ok := cfg.SourceOf(p.Key())
		if !ok && set {
			source = sourceDefault
		}
		if set && value != "" && strings.Contains(strings.ToLower(p.Key()), "password") {
			value = maskedValue
		}

		attrs = append(attrs, attribute{
			Key:         p.Key(),
			Value:       value,
			Set:         set,
			Source:      source,
			Type:        p.Type().String(),
			Description: p.Description(),
		})
	}
	return attrs
}

func writeJSON(w io.Writer, attrs []attribute) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(attrs)
}

func writeText(w io.Writer, attrs []attribute) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, a := range attrs {
		value := a.Value
		if !a.Set {
			value = "<unset>"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Key, value, a.Source)
	}
	return tw.Flush()
}
