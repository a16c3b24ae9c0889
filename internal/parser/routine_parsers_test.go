// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package parser

import (
	"testing"

	"fitbook/internal/command"
	"fitbook/internal/routine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddRoutine(t *testing.T) {
	t.Run("should build a routine with exercises in order", func(t *testing.T) {
		cmd, err := Parse("addRoutine r/Cardio ex/Jumping jacks 3x20 ex/Burpees 3x10")
		require.NoError(t, err)

		add, ok := cmd.(command.AddRoutine)
		require.True(t, ok)
		assert.Equal(t, routine.Name("Cardio"), add.Routine.Name)
		assert.Equal(t, []routine.Exercise{"Jumping jacks 3x20", "Burpees 3x10"}, add.Routine.Exercises)
	})

	t.Run("should accept a routine without exercises", func(t *testing.T) {
		cmd, err := Parse("addRoutine r/Rest Day")
		require.NoError(t, err)
		assert.Empty(t, cmd.(command.AddRoutine).Routine.Exercises)
	})

	t.Run("should reject a missing name", func(t *testing.T) {
		assertParseError(t, "addRoutine ex/Squats",
			"Invalid command format!\n"+command.AddRoutineUsage)
	})

	t.Run("should reject a repeated name", func(t *testing.T) {
		assertParseError(t, "addRoutine r/Cardio r/Strength",
			"Multiple values specified for the single-valued field r/")
	})

	t.Run("should surface field validation messages", func(t *testing.T) {
		assertParseError(t, "addRoutine r/Cardio!", routine.NameConstraints)
	})
}

func TestParseEditRoutine(t *testing.T) {
	t.Run("should parse index and name change", func(t *testing.T) {
		cmd, err := Parse("editRoutine 1 r/Strength")
		require.NoError(t, err)

		edit, ok := cmd.(command.EditRoutine)
		require.True(t, ok)
		assert.Equal(t, 1, edit.Index)
		require.NotNil(t, edit.Descriptor.Name)
		assert.Equal(t, routine.Name("Strength"), *edit.Descriptor.Name)
		assert.False(t, edit.Descriptor.ExercisesSet)
	})

	t.Run("should replace the exercise list when given", func(t *testing.T) {
		cmd, err := Parse("editRoutine 2 ex/Rowing 2000m ex/Stretching")
		require.NoError(t, err)

		edit := cmd.(command.EditRoutine)
		assert.True(t, edit.Descriptor.ExercisesSet)
		assert.Equal(t, []routine.Exercise{"Rowing 2000m", "Stretching"}, edit.Descriptor.Exercises)
	})

	t.Run("should treat a lone empty ex/ as clearing the exercises", func(t *testing.T) {
		cmd, err := Parse("editRoutine 1 ex/")
		require.NoError(t, err)

		edit := cmd.(command.EditRoutine)
		assert.True(t, edit.Descriptor.ExercisesSet)
		assert.Empty(t, edit.Descriptor.Exercises)
	})

	t.Run("should reject an edit with no fields", func(t *testing.T) {
		assertParseError(t, "editRoutine 1",
			"Invalid command format!\n"+command.EditRoutineUsage)
	})

	t.Run("should reject a malformed index", func(t *testing.T) {
		assertParseError(t, "editRoutine 0 r/Cardio",
			"Invalid command format!\n"+command.EditRoutineUsage)
	})
}

func TestParseDeleteRoutine(t *testing.T) {
	t.Run("should parse a one-based index", func(t *testing.T) {
		cmd, err := Parse("deleteRoutine 2")
		require.NoError(t, err)
		assert.Equal(t, command.DeleteRoutine{Index: 2}, cmd)
	})

	t.Run("should reject a malformed index", func(t *testing.T) {
		assertParseError(t, "deleteRoutine zero",
			"Invalid command format!\n"+command.DeleteRoutineUsage)
	})
}

func TestParseFindRoutines(t *testing.T) {
	t.Run("should split keywords on whitespace", func(t *testing.T) {
		cmd, err := Parse("findRoutine cardio core")
		require.NoError(t, err)
		assert.Equal(t, command.FindRoutines{Keywords: []string{"cardio", "core"}}, cmd)
	})

	t.Run("should reject an empty keyword list", func(t *testing.T) {
		assertParseError(t, "findRoutine",
			"Invalid command format!\n"+command.FindRoutineUsage)
	})
}
