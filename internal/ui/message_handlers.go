// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's message_handlers.go file handles the non-key messages
// received by the model's Update function.

package ui

import (
	"fitbook/internal/command"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Message Handlers ---

func handleWindowSizeMsg(m *model, msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height

	// The list pane gets whatever is left after the header, the feedback
	// line, the input line and the footer.
	paneHeight := m.height - headerHeight - 4
	if paneHeight < 1 {
		paneHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, paneHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = paneHeight
	}
	m.input.Width = m.width - 4
	m.refreshListPane()
	return nil
}

func handleBookLoadedMsg(m *model, msg bookLoadedMsg) tea.Cmd {
	m.mgr = msg.mgr
	m.currentState = stateBrowse
	m.refreshListPane()
	return m.input.Focus()
}

func handleCommandResultMsg(m *model, msg commandResultMsg) tea.Cmd {
	if msg.err != nil {
		m.feedback = msg.err.Error()
		m.feedbackIsErr = true
		m.refreshListPane()
		return nil
	}

	m.feedback = msg.res.Feedback
	m.feedbackIsErr = false

	if msg.res.Exit {
		return tea.Quit
	}
	if msg.res.ShowHelp {
		m.currentState = stateHelp
		return nil
	}

	// Bring the pane the command concerned to the front.
	switch msg.res.Focus {
	case command.FocusClients:
		m.activePane = paneClients
	case command.FocusRoutines:
		m.activePane = paneRoutines
	}

	var cmd tea.Cmd
	if m.currentState == stateAddClientForm {
		m.currentState = stateBrowse
		cmd = m.input.Focus()
	}
	m.refreshListPane()
	return cmd
}
