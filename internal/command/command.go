// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package command defines the typed command objects the parser produces and
// the execution contract they share. Every user instruction, whichever front
// end it arrives through, becomes one of these objects and is applied to the
// in-memory FitBook via Execute.
package command

import "fitbook/internal/model"

// Focus tells the front end which list a command's result concerns, so the
// TUI can bring the right pane forward.
type Focus int

const (
	FocusNone Focus = iota
	FocusClients
	FocusRoutines
)

// Result is the outcome of a successfully executed command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string

	// ShowHelp asks the front end to display the command summary.
	ShowHelp bool

	// Exit asks the front end to terminate the session.
	Exit bool

	// Focus names the list this result concerns.
	Focus Focus
}

// Command is a parsed user instruction ready to run against the model.
// Execute mutates the book (or its filter state) and returns feedback, or an
// error when the command cannot be applied (bad index, duplicate entry).
type Command interface {
	Execute(book *model.FitBook) (Result, error)
}

// Usage strings for each command, referenced by the parser when a command's
// arguments are malformed.
const (
	AddUsage = "add: Adds a client to FitBook.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS w/WEIGHT g/GENDER cal/CALORIE [app/APPOINTMENT]... [t/TAG]...\n" +
		"Example: add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 w/70 g/M cal/2200 app/12-12-2026 t/gym"

	EditUsage = "edit: Edits the client at the given display index. At least one field must be provided.\n" +
		"Parameters: INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [w/WEIGHT] [g/GENDER] [cal/CALORIE] [app/APPOINTMENT]... [t/TAG]...\n" +
		"Example: edit 1 p/91234567 e/johndoe@example.com"

	DeleteUsage = "delete: Deletes the client at the given display index.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: delete 1"

	ListUsage = "list: Lists all clients."

	FindUsage = "find: Finds clients whose names contain any of the given keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find alex david"

	ClearUsage = "clear: Clears all clients."

	AddRoutineUsage = "addRoutine: Adds an exercise routine to FitBook.\n" +
		"Parameters: r/ROUTINE_NAME [ex/EXERCISE]...\n" +
		"Example: addRoutine r/Cardio ex/Jumping jacks 3x20 ex/Burpees 3x10"

	EditRoutineUsage = "editRoutine: Edits the routine at the given display index. At least one field must be provided.\n" +
		"Parameters: INDEX [r/ROUTINE_NAME] [ex/EXERCISE]...\n" +
		"Example: editRoutine 1 r/Strength"

	DeleteRoutineUsage = "deleteRoutine: Deletes the routine at the given display index.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: deleteRoutine 1"

	ListRoutinesUsage = "listRoutines: Lists all routines."

	FindRoutineUsage = "findRoutine: Finds routines whose names contain any of the given keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: findRoutine cardio"

	ClearRoutinesUsage = "clearRoutines: Clears all routines."

	HelpUsage = "help: Shows this command summary."

	ExitUsage = "exit: Exits FitBook."
)

// HelpText is the full command summary shown by the help command.
const HelpText = "Client commands:\n" +
	"  add n/NAME p/PHONE e/EMAIL a/ADDRESS w/WEIGHT g/GENDER cal/CALORIE [app/APPOINTMENT]... [t/TAG]...\n" +
	"  edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [w/WEIGHT] [g/GENDER] [cal/CALORIE] [app/APPOINTMENT]... [t/TAG]...\n" +
	"  delete INDEX\n" +
	"  list\n" +
	"  find KEYWORD [MORE_KEYWORDS]...\n" +
	"  clear\n" +
	"Routine commands:\n" +
	"  addRoutine r/ROUTINE_NAME [ex/EXERCISE]...\n" +
	"  editRoutine INDEX [r/ROUTINE_NAME] [ex/EXERCISE]...\n" +
	"  deleteRoutine INDEX\n" +
	"  listRoutines\n" +
	"  findRoutine KEYWORD [MORE_KEYWORDS]...\n" +
	"  clearRoutines\n" +
	"Other commands:\n" +
	"  help\n" +
	"  exit"
