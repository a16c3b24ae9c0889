// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains Bubble Tea commands that perform
// asynchronous operations in the TUI: loading the data files on startup and
// running user commands through the logic pipeline without blocking the UI.

package ui

import (
	"fitbook/internal/command"
	"fitbook/internal/logic"
	"fitbook/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Bubble Tea Commands ---

// loadBookCmd reads the data files applying the startup fallback policy and
// hands the ready logic manager back to the UI.
func loadBookCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		book := store.LoadBook()
		return bookLoadedMsg{mgr: logic.NewManager(book, store)}
	}
}

// execCmd runs one line of command text through parse → execute → save.
func execCmd(mgr *logic.Manager, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := mgr.Execute(text)
		return commandResultMsg{res: res, err: err}
	}
}

// runCmd executes an already-built command object, used by the add-client
// form which assembles the client itself rather than going through the
// text parser.
func runCmd(mgr *logic.Manager, cmd command.Command) tea.Cmd {
	return func() tea.Msg {
		res, err := mgr.Run(cmd)
		return commandResultMsg{res: res, err: err}
	}
}
