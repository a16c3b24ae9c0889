// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package main

import (
	"os"

	"fitbook/cmd/cli"
	"fitbook/cmd/tui"
)

func main() {
	if len(os.Args) > 1 {
		// CLI mode
		cli.RunCLI()
	} else {
		// TUI mode
		tui.RunTUI()
	}
}
