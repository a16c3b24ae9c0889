// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"os"

	"fitbook/internal/config"
	"fitbook/internal/logger"
	"fitbook/internal/storage"
	"fitbook/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI initializes and runs the Bubble Tea TUI application.
func RunTUI() {
	logger.InitLogger(true)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.SetLevelFromString(cfg.LogLevel); err != nil {
		logger.Warnf("Ignoring configured log level: %v", err)
	}

	dataDir, err := config.EffectiveDataDir(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving data directory: %v\n", err)
		os.Exit(1)
	}

	m := ui.InitialModel(storage.New(dataDir))
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
