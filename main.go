// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Aerocode.
//
// Usage:
//
//	go run . [flags]
//	./aerocode [flags]
//
// This launches the Aerocode TUI. See --help for the headless commands.
package main

import (
	"os"

	"github.com/aerocode/aerocode/internal/logging"
	"github.com/aerocode/aerocode/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("aerocode: %v", err)
		os.Exit(1)
	}
}
