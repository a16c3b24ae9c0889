// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import (
	"fmt"
	"slices"
	"strings"

	"fitbook/internal/model"
	"fitbook/internal/routine"
)

// AddRoutine adds a new routine to the book.
type AddRoutine struct {
	Routine routine.Routine
}

func (c AddRoutine) Execute(book *model.FitBook) (Result, error) {
	if err := book.AddRoutine(c.Routine); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("New routine added: %s", c.Routine),
		Focus:    FocusRoutines,
	}, nil
}

// EditRoutineDescriptor carries the fields to change on an existing routine.
// A nil Name is left untouched; an empty (non-nil) exercise list clears the
// exercises, which ExercisesSet distinguishes from "leave alone".
type EditRoutineDescriptor struct {
	Name         *routine.Name
	Exercises    []routine.Exercise
	ExercisesSet bool
}

// AnyFieldSet reports whether the descriptor would change anything.
func (d EditRoutineDescriptor) AnyFieldSet() bool {
	return d.Name != nil || d.ExercisesSet
}

func (d EditRoutineDescriptor) apply(target routine.Routine) routine.Routine {
	edited := target
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.ExercisesSet {
		edited.Exercises = slices.Clone(d.Exercises)
	}
	return edited
}

// EditRoutine edits the routine at a one-based index into the filtered list.
type EditRoutine struct {
	Index      int
	Descriptor EditRoutineDescriptor
}

func (c EditRoutine) Execute(book *model.FitBook) (Result, error) {
	target, err := book.FilteredRoutineAt(c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.apply(target)
	if err := book.SetRoutine(target, edited); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Edited routine: %s", edited),
		Focus:    FocusRoutines,
	}, nil
}

// DeleteRoutine removes the routine at a one-based index into the filtered list.
type DeleteRoutine struct {
	Index int
}

func (c DeleteRoutine) Execute(book *model.FitBook) (Result, error) {
	target, err := book.FilteredRoutineAt(c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := book.RemoveRoutine(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted routine: %s", target),
		Focus:    FocusRoutines,
	}, nil
}

// ListRoutines resets the routine filter to show everything.
type ListRoutines struct{}

func (ListRoutines) Execute(book *model.FitBook) (Result, error) {
	book.ResetRoutineFilter()
	return Result{Feedback: "Listed all routines", Focus: FocusRoutines}, nil
}

// FindRoutines filters the routine view by case-insensitive whole-word name
// keywords, any of which may match.
type FindRoutines struct {
	Keywords []string
}

// RoutineNameMatchesKeywords is the predicate FindRoutines installs.
func RoutineNameMatchesKeywords(keywords []string) model.RoutinePredicate {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(r routine.Routine) bool {
		for _, word := range strings.Fields(strings.ToLower(r.Name.String())) {
			for _, k := range lowered {
				if word == k {
					return true
				}
			}
		}
		return false
	}
}

func (c FindRoutines) Execute(book *model.FitBook) (Result, error) {
	book.SetRoutineFilter(RoutineNameMatchesKeywords(c.Keywords))
	n := len(book.FilteredRoutines())
	return Result{
		Feedback: fmt.Sprintf("%d routines listed!", n),
		Focus:    FocusRoutines,
	}, nil
}

// ClearRoutines empties the routine list.
type ClearRoutines struct{}

func (ClearRoutines) Execute(book *model.FitBook) (Result, error) {
	book.ClearRoutines()
	return Result{Feedback: "FitBook routines have been cleared!", Focus: FocusRoutines}, nil
}
