// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command accumulo-client-conf inspects the client configuration a session
// would be established with.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
