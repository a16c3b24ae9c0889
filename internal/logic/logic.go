// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logic wires the pipeline together: a text command is parsed into
// a command object, executed against the in-memory FitBook, and the book is
// persisted after every successful command. All front ends (TUI, CLI, HTTP
// API) go through a single Manager, which serializes access to the model.
package logic

import (
	"fmt"
	"sync"

	"fitbook/internal/client"
	"fitbook/internal/command"
	"fitbook/internal/logger"
	"fitbook/internal/model"
	"fitbook/internal/parser"
	"fitbook/internal/routine"
	"fitbook/internal/storage"
)

// saveErrFormat is the command error shown when the book mutated in memory
// but could not be written to disk. The in-memory change stands.
const saveErrFormat = "could not save data to file: %v"

// Manager executes text commands against a FitBook and keeps it persisted.
type Manager struct {
	mu    sync.Mutex
	book  *model.FitBook
	store *storage.Storage
}

func NewManager(book *model.FitBook, store *storage.Storage) *Manager {
	return &Manager{book: book, store: store}
}

// Execute runs one text command through parse → execute → save.
// Parse failures and execution failures are returned as errors with
// user-facing messages; a save failure after a successful execution is
// also a command error, but the in-memory mutation is kept.
func (m *Manager) Execute(text string) (command.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger.Debug("Executing command.", "input", text)

	cmd, err := parser.Parse(text)
	if err != nil {
		return command.Result{}, err
	}

	res, err := cmd.Execute(m.book)
	if err != nil {
		return command.Result{}, err
	}

	if err := m.store.Save(m.book); err != nil {
		logger.Error("Failed to save FitBook after command.", "error", err)
		return command.Result{}, fmt.Errorf(saveErrFormat, err)
	}

	return res, nil
}

// Run executes an already-constructed command object, with the same
// persistence contract as Execute. The HTTP API and tests use it to bypass
// the text parser.
func (m *Manager) Run(cmd command.Command) (command.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := cmd.Execute(m.book)
	if err != nil {
		return command.Result{}, err
	}
	if err := m.store.Save(m.book); err != nil {
		logger.Error("Failed to save FitBook after command.", "error", err)
		return command.Result{}, fmt.Errorf(saveErrFormat, err)
	}
	return res, nil
}

// Clients returns a snapshot of the full client list.
func (m *Manager) Clients() []client.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Clients()
}

// FilteredClients returns a snapshot of the currently displayed clients.
func (m *Manager) FilteredClients() []client.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.FilteredClients()
}

// Routines returns a snapshot of the full routine list.
func (m *Manager) Routines() []routine.Routine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Routines()
}

// FilteredRoutines returns a snapshot of the currently displayed routines.
func (m *Manager) FilteredRoutines() []routine.Routine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.FilteredRoutines()
}
