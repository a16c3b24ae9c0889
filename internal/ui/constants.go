// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateLoadingBook state = iota
	stateBrowse
	stateHelp
	stateAddClientForm
)

// pane identifies which entity list the browse view is showing.
type pane int

const (
	paneClients pane = iota
	paneRoutines
)

// Indices into the add-client form's input slice.
const (
	formFieldName = iota
	formFieldPhone
	formFieldEmail
	formFieldAddress
	formFieldWeight
	formFieldGender
	formFieldCalorie
	formFieldAppointments
	formFieldTags
	formFieldCount
)

const headerHeight = 1 // Height reserved for the main title header.
