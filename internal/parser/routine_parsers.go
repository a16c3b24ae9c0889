// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package parser

import (
	"fitbook/internal/command"
	"fitbook/internal/routine"
)

var routinePrefixes = []Prefix{PrefixRoutineName, PrefixExercise}

func parseAddRoutine(args string) (command.Command, error) {
	a := tokenize(args, routinePrefixes...)
	if a.preamble != "" {
		return nil, invalidFormat(command.AddRoutineUsage)
	}

	nameStr, err := requireOne(a, PrefixRoutineName, command.AddRoutineUsage)
	if err != nil {
		return nil, err
	}
	name, err := routine.ParseName(nameStr)
	if err != nil {
		return nil, fieldError(err)
	}
	exercises, err := parseExercises(a.all(PrefixExercise))
	if err != nil {
		return nil, err
	}

	return command.AddRoutine{Routine: routine.New(name, exercises)}, nil
}

func parseEditRoutine(args string) (command.Command, error) {
	a := tokenize(args, routinePrefixes...)
	idx, err := parseIndex(a.preamble, command.EditRoutineUsage)
	if err != nil {
		return nil, err
	}

	var desc command.EditRoutineDescriptor
	if v, ok, dup := a.one(PrefixRoutineName); dup {
		return nil, duplicatePrefix(PrefixRoutineName)
	} else if ok {
		name, err := routine.ParseName(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Name = &name
	}
	if vs := a.all(PrefixExercise); vs != nil {
		desc.ExercisesSet = true
		if !(len(vs) == 1 && vs[0] == "") { // a lone empty ex/ clears the list
			desc.Exercises, err = parseExercises(vs)
			if err != nil {
				return nil, err
			}
		}
	}

	if !desc.AnyFieldSet() {
		return nil, invalidFormat(command.EditRoutineUsage)
	}
	return command.EditRoutine{Index: idx, Descriptor: desc}, nil
}

func parseExercises(values []string) ([]routine.Exercise, error) {
	var out []routine.Exercise
	for _, v := range values {
		e, err := routine.ParseExercise(v)
		if err != nil {
			return nil, fieldError(err)
		}
		out = append(out, e)
	}
	return out, nil
}
