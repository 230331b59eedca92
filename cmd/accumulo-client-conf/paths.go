// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// pathsCmd represents the paths command
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the configuration search path",
	Long: `List the candidate configuration files in priority order and whether
each one exists. The --config flag is ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := newLoader().SearchPath()
		if err != nil {
			return err
		}

		for _, p := range paths {
			status := "found"
			if _, err := os.Stat(p); err != nil {
				status = "unreadable"
				if errors.Is(err, fs.ErrNotExist) {
					status = "missing"
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
