// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logic

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"fitbook/internal/client"
	"fitbook/internal/command"
	"fitbook/internal/logger"
	"fitbook/internal/model"
	"fitbook/internal/parser"
	"fitbook/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

const addJohn = "add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 w/70 g/M cal/2200"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(model.New(), storage.New(t.TempDir()))
}

func TestExecute(t *testing.T) {
	t.Run("should run a command and persist the result", func(t *testing.T) {
		dir := t.TempDir()
		store := storage.New(dir)
		mgr := NewManager(model.New(), store)

		res, err := mgr.Execute(addJohn)
		require.NoError(t, err)
		assert.Contains(t, res.Feedback, "New client added: John Doe")

		// a fresh manager over the same directory sees the saved client
		reloaded := NewManager(store.LoadBook(), store)
		require.Len(t, reloaded.Clients(), 1)
		assert.Equal(t, client.Name("John Doe"), reloaded.Clients()[0].Name)
	})

	t.Run("should surface parse errors without touching the book", func(t *testing.T) {
		mgr := newTestManager(t)
		_, err := mgr.Execute("add n/John Doe")
		var parseErr *parser.Error
		require.ErrorAs(t, err, &parseErr)
		assert.Empty(t, mgr.Clients())
	})

	t.Run("should surface an unknown command word", func(t *testing.T) {
		mgr := newTestManager(t)
		_, err := mgr.Execute("uicfhmowqewca")
		assert.ErrorIs(t, err, parser.ErrUnknownCommand)
	})

	t.Run("should surface execution errors", func(t *testing.T) {
		mgr := newTestManager(t)
		_, err := mgr.Execute("delete 9")
		assert.ErrorIs(t, err, model.ErrClientIndexRange)
	})

	t.Run("should keep the in-memory change when saving fails", func(t *testing.T) {
		// a data directory nested under a regular file cannot be created
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte{}, 0640))
		mgr := NewManager(model.New(), storage.New(filepath.Join(blocker, "data")))

		_, err := mgr.Execute(addJohn)
		require.Error(t, err)
		assert.ErrorContains(t, err, "could not save data to file")
		assert.Len(t, mgr.Clients(), 1)
	})

	t.Run("should drive the filtered view through find and list", func(t *testing.T) {
		mgr := newTestManager(t)
		_, err := mgr.Execute(addJohn)
		require.NoError(t, err)
		_, err = mgr.Execute("add n/Betsy Crowe p/12345678 e/betsy@example.com a/Newgate Prison w/55 g/F cal/1800")
		require.NoError(t, err)

		res, err := mgr.Execute("find betsy")
		require.NoError(t, err)
		assert.Equal(t, "1 clients listed!", res.Feedback)
		assert.Len(t, mgr.FilteredClients(), 1)
		assert.Len(t, mgr.Clients(), 2)

		// delete addresses the filtered list
		_, err = mgr.Execute("delete 1")
		require.NoError(t, err)
		require.Len(t, mgr.Clients(), 1)
		assert.Equal(t, client.Name("John Doe"), mgr.Clients()[0].Name)

		_, err = mgr.Execute("list")
		require.NoError(t, err)
		assert.Len(t, mgr.FilteredClients(), 1)
	})

	t.Run("should handle the routine commands end to end", func(t *testing.T) {
		mgr := newTestManager(t)
		_, err := mgr.Execute("addRoutine r/Cardio ex/Sprints 8x200m")
		require.NoError(t, err)

		res, err := mgr.Execute("editRoutine 1 r/Conditioning")
		require.NoError(t, err)
		assert.Contains(t, res.Feedback, "Edited routine: Conditioning")

		_, err = mgr.Execute("deleteRoutine 1")
		require.NoError(t, err)
		assert.Empty(t, mgr.Routines())
	})
}

func TestRun(t *testing.T) {
	t.Run("should execute a prebuilt command with the same persistence contract", func(t *testing.T) {
		dir := t.TempDir()
		store := storage.New(dir)
		mgr := NewManager(model.New(), store)

		c := client.New("Alice", "98765432", "x@example.com", "Somewhere", "60", "F", 1800, nil, nil)
		res, err := mgr.Run(command.AddClient{Client: c})
		require.NoError(t, err)
		assert.Equal(t, command.FocusClients, res.Focus)
		assert.FileExists(t, store.ClientsPath())
	})

	t.Run("should surface execution errors", func(t *testing.T) {
		mgr := newTestManager(t)
		_, err := mgr.Run(command.DeleteClient{Index: 1})
		assert.ErrorIs(t, err, model.ErrClientIndexRange)
	})
}
