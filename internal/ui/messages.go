// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the
// Bubble Tea Model-View-Update architecture. These messages carry the
// results of asynchronous work back into the Update method.

package ui

import (
	"fitbook/internal/command"
	"fitbook/internal/logic"
)

// bookLoadedMsg is sent once the data files have been read (or the fallback
// policy applied) and the logic manager is ready.
type bookLoadedMsg struct {
	mgr *logic.Manager
}

// commandResultMsg carries the outcome of one executed command, whether it
// came from the command input or the add-client form.
type commandResultMsg struct {
	res command.Result
	err error
}
