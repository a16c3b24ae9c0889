// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fitbook/internal/logic"
	"fitbook/internal/storage"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// model is the single Bubble Tea model backing the whole TUI.
type model struct {
	store *storage.Storage
	mgr   *logic.Manager // set once bookLoadedMsg arrives

	currentState state
	activePane   pane

	input    textinput.Model // the command line
	viewport viewport.Model  // the list pane
	ready    bool

	feedback      string // last command feedback, shown under the list
	feedbackIsErr bool

	formInputs []textinput.Model // add-client form fields
	formFocus  int

	keymap KeyMap
	width  int
	height int
}

// InitialModel creates the TUI model in its loading state.
func InitialModel(store *storage.Storage) model {
	input := textinput.New()
	input.Placeholder = "Type a command (e.g. add n/John Doe p/98765432 ...) — help lists them all"
	input.CharLimit = 500
	input.Prompt = "> "

	return model{
		store:        store,
		currentState: stateLoadingBook,
		activePane:   paneClients,
		input:        input,
		keymap:       DefaultKeyMap,
	}
}

func (m *model) Init() tea.Cmd {
	return loadBookCmd(m.store)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmds = append(cmds, handleWindowSizeMsg(m, msg))

	case tea.KeyMsg:
		switch m.currentState {
		case stateLoadingBook:
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
		case stateBrowse:
			cmds = append(cmds, m.handleBrowseKeys(msg)...)
		case stateHelp:
			cmds = append(cmds, m.handleHelpKeys(msg)...)
		case stateAddClientForm:
			cmds = append(cmds, m.handleAddFormKeys(msg)...)
		}

	case bookLoadedMsg:
		cmds = append(cmds, handleBookLoadedMsg(m, msg))

	case commandResultMsg:
		cmd := handleCommandResultMsg(m, msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	header := titleStyle.Render("FitBook")

	var body, footer string
	switch m.currentState {
	case stateLoadingBook:
		body, footer = m.renderLoadingView()
	case stateBrowse:
		body, footer = m.renderBrowseView()
	case stateHelp:
		body, footer = m.renderHelpView()
	case stateAddClientForm:
		body, footer = m.renderAddFormView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
