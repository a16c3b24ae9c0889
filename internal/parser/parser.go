// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"fitbook/internal/command"
)

// Error is a parse failure. Front ends show the message verbatim; it is
// distinct from execution errors (bad index, duplicate entry), which come
// from the model.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// ErrUnknownCommand is returned when the command word is not recognised.
var ErrUnknownCommand = &Error{msg: "Unknown command\n\n" + command.HelpUsage}

func invalidFormat(usage string) error {
	return &Error{msg: "Invalid command format!\n" + usage}
}

func fieldError(err error) error {
	return &Error{msg: err.Error()}
}

func duplicatePrefix(p Prefix) error {
	return &Error{msg: fmt.Sprintf("Multiple values specified for the single-valued field %s", p)}
}

// Command words recognised by Parse.
const (
	AddWord           = "add"
	EditWord          = "edit"
	DeleteWord        = "delete"
	ListWord          = "list"
	FindWord          = "find"
	ClearWord         = "clear"
	AddRoutineWord    = "addRoutine"
	EditRoutineWord   = "editRoutine"
	DeleteRoutineWord = "deleteRoutine"
	ListRoutinesWord  = "listRoutines"
	FindRoutineWord   = "findRoutine"
	ClearRoutinesWord = "clearRoutines"
	HelpWord          = "help"
	ExitWord          = "exit"
)

// Parse turns one line of user input into a command object.
func Parse(input string) (command.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, invalidFormat(command.HelpUsage)
	}

	word, args, _ := strings.Cut(trimmed, " ")
	args = strings.TrimSpace(args)

	switch word {
	case AddWord:
		return parseAddClient(args)
	case EditWord:
		return parseEditClient(args)
	case DeleteWord:
		return parseDeleteClient(args)
	case ListWord:
		return command.ListClients{}, nil
	case FindWord:
		return parseFindClients(args)
	case ClearWord:
		return command.ClearClients{}, nil
	case AddRoutineWord:
		return parseAddRoutine(args)
	case EditRoutineWord:
		return parseEditRoutine(args)
	case DeleteRoutineWord:
		return parseDeleteRoutine(args)
	case ListRoutinesWord:
		return command.ListRoutines{}, nil
	case FindRoutineWord:
		return parseFindRoutines(args)
	case ClearRoutinesWord:
		return command.ClearRoutines{}, nil
	case HelpWord:
		return command.Help{}, nil
	case ExitWord:
		return command.Exit{}, nil
	default:
		return nil, ErrUnknownCommand
	}
}

// parseIndex parses a one-based display index. Zero, negative and
// non-numeric values are format errors, not out-of-range errors.
func parseIndex(s, usage string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || idx < 1 {
		return 0, invalidFormat(usage)
	}
	return idx, nil
}

func parseFindClients(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}
	return command.FindClients{Keywords: keywords}, nil
}

func parseFindRoutines(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindRoutineUsage)
	}
	return command.FindRoutines{Keywords: keywords}, nil
}

func parseDeleteClient(args string) (command.Command, error) {
	idx, err := parseIndex(args, command.DeleteUsage)
	if err != nil {
		return nil, err
	}
	return command.DeleteClient{Index: idx}, nil
}

func parseDeleteRoutine(args string) (command.Command, error) {
	idx, err := parseIndex(args, command.DeleteRoutineUsage)
	if err != nil {
		return nil, err
	}
	return command.DeleteRoutine{Index: idx}, nil
}
