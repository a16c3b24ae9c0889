// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import "fitbook/internal/model"

// Help asks the front end to show the command summary.
type Help struct{}

func (Help) Execute(*model.FitBook) (Result, error) {
	return Result{Feedback: HelpText, ShowHelp: true}, nil
}

// Exit asks the front end to terminate the session.
type Exit struct{}

func (Exit) Execute(*model.FitBook) (Result, error) {
	return Result{Feedback: "Exiting FitBook as requested ...", Exit: true}, nil
}
