// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses for specific UI states.

func (m *model) handleBrowseKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd
	var vpCmd tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return []tea.Cmd{tea.Quit}
	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PgUp), key.Matches(msg, m.keymap.PgDown):
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	case key.Matches(msg, m.keymap.Tab):
		if m.activePane == paneClients {
			m.activePane = paneRoutines
		} else {
			m.activePane = paneClients
		}
		m.refreshListPane()
	case key.Matches(msg, m.keymap.AddForm):
		m.openAddForm()
	case key.Matches(msg, m.keymap.Esc):
		m.input.SetValue("")
		m.feedback = ""
		m.feedbackIsErr = false
	case key.Matches(msg, m.keymap.Enter):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			break
		}
		m.input.SetValue("")
		cmds = append(cmds, execCmd(m.mgr, text))
	default:
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		cmds = append(cmds, inputCmd)
	}
	return cmds
}

func (m *model) handleHelpKeys(msg tea.KeyMsg) []tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return []tea.Cmd{tea.Quit}
	case key.Matches(msg, m.keymap.Esc), key.Matches(msg, m.keymap.Enter):
		m.currentState = stateBrowse
		m.refreshListPane()
	}
	return nil
}

func (m *model) handleAddFormKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return []tea.Cmd{tea.Quit}
	case key.Matches(msg, m.keymap.Esc):
		m.currentState = stateBrowse
		m.feedback = ""
		m.feedbackIsErr = false
		cmds = append(cmds, m.input.Focus())
	case key.Matches(msg, m.keymap.Tab):
		cmds = append(cmds, m.focusFormField(m.formFocus+1)...)
	case key.Matches(msg, m.keymap.ShiftTab):
		cmds = append(cmds, m.focusFormField(m.formFocus-1)...)
	case key.Matches(msg, m.keymap.Enter):
		if m.formFocus < formFieldCount-1 {
			cmds = append(cmds, m.focusFormField(m.formFocus+1)...)
			break
		}
		// Last field: submit.
		addCmd, err := m.buildAddClientFromForm()
		if err != nil {
			m.feedback = err.Error()
			m.feedbackIsErr = true
			break
		}
		cmds = append(cmds, runCmd(m.mgr, addCmd))
	default:
		var inputCmd tea.Cmd
		m.formInputs[m.formFocus], inputCmd = m.formInputs[m.formFocus].Update(msg)
		cmds = append(cmds, inputCmd)
	}
	return cmds
}

// focusFormField moves form focus with wraparound and returns the focus cmd.
func (m *model) focusFormField(target int) []tea.Cmd {
	if target < 0 {
		target = formFieldCount - 1
	}
	if target >= formFieldCount {
		target = 0
	}
	m.formInputs[m.formFocus].Blur()
	m.formFocus = target
	return []tea.Cmd{m.formInputs[m.formFocus].Focus()}
}

func (m *model) openAddForm() {
	m.formInputs = createAddClientForm()
	m.formFocus = 0
	m.currentState = stateAddClientForm
	m.input.Blur()
	m.feedback = ""
	m.feedbackIsErr = false
}
