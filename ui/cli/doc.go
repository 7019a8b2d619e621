// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Aerocode using Cobra.
// It loads configuration, selects the language and logger level, and then
// either launches the interactive TUI or runs one of the headless commands.
package cli
