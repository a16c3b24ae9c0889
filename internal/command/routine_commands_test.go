// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import (
	"testing"

	"fitbook/internal/model"
	"fitbook/internal/routine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutine(name string, exercises ...routine.Exercise) routine.Routine {
	return routine.New(routine.Name(name), exercises)
}

func routineBook(t *testing.T, names ...string) *model.FitBook {
	t.Helper()
	book := model.New()
	for _, name := range names {
		require.NoError(t, book.AddRoutine(newRoutine(name)))
	}
	return book
}

func TestAddRoutineExecute(t *testing.T) {
	t.Run("should add the routine and report it", func(t *testing.T) {
		book := model.New()
		r := newRoutine("Cardio", "Sprints 8x200m")

		res, err := AddRoutine{Routine: r}.Execute(book)
		require.NoError(t, err)
		assert.Equal(t, "New routine added: "+r.String(), res.Feedback)
		assert.Equal(t, FocusRoutines, res.Focus)
	})

	t.Run("should reject a duplicate name", func(t *testing.T) {
		book := routineBook(t, "Cardio")
		_, err := AddRoutine{Routine: newRoutine("Cardio")}.Execute(book)
		assert.ErrorIs(t, err, model.ErrDuplicateRoutine)
	})
}

func TestEditRoutineExecute(t *testing.T) {
	t.Run("should rename while keeping the exercises", func(t *testing.T) {
		book := model.New()
		require.NoError(t, book.AddRoutine(newRoutine("Cardio", "Sprints")))

		name := routine.Name("Conditioning")
		_, err := EditRoutine{Index: 1, Descriptor: EditRoutineDescriptor{Name: &name}}.Execute(book)
		require.NoError(t, err)

		got := book.Routines()[0]
		assert.Equal(t, name, got.Name)
		assert.Equal(t, []routine.Exercise{"Sprints"}, got.Exercises)
	})

	t.Run("should replace the exercise list when set", func(t *testing.T) {
		book := model.New()
		require.NoError(t, book.AddRoutine(newRoutine("Cardio", "Sprints")))

		_, err := EditRoutine{Index: 1, Descriptor: EditRoutineDescriptor{
			Exercises:    []routine.Exercise{"Rowing 2000m"},
			ExercisesSet: true,
		}}.Execute(book)
		require.NoError(t, err)
		assert.Equal(t, []routine.Exercise{"Rowing 2000m"}, book.Routines()[0].Exercises)
	})

	t.Run("should clear the exercises when set with no values", func(t *testing.T) {
		book := model.New()
		require.NoError(t, book.AddRoutine(newRoutine("Cardio", "Sprints")))

		_, err := EditRoutine{Index: 1, Descriptor: EditRoutineDescriptor{ExercisesSet: true}}.Execute(book)
		require.NoError(t, err)
		assert.Empty(t, book.Routines()[0].Exercises)
	})

	t.Run("should reject an edit that duplicates another routine", func(t *testing.T) {
		book := routineBook(t, "Cardio", "Strength")
		name := routine.Name("Strength")
		_, err := EditRoutine{Index: 1, Descriptor: EditRoutineDescriptor{Name: &name}}.Execute(book)
		assert.ErrorIs(t, err, model.ErrDuplicateRoutine)
	})

	t.Run("should reject an out-of-range index", func(t *testing.T) {
		book := routineBook(t, "Cardio")
		name := routine.Name("Core")
		_, err := EditRoutine{Index: 5, Descriptor: EditRoutineDescriptor{Name: &name}}.Execute(book)
		assert.ErrorIs(t, err, model.ErrRoutineIndexRange)
	})
}

func TestDeleteRoutineExecute(t *testing.T) {
	t.Run("should delete the filtered entry", func(t *testing.T) {
		book := routineBook(t, "Cardio", "Strength")
		book.SetRoutineFilter(func(r routine.Routine) bool { return r.Name == "Strength" })

		_, err := DeleteRoutine{Index: 1}.Execute(book)
		require.NoError(t, err)
		require.Len(t, book.Routines(), 1)
		assert.Equal(t, routine.Name("Cardio"), book.Routines()[0].Name)
	})
}

func TestFindRoutinesExecute(t *testing.T) {
	t.Run("should match whole words case-insensitively", func(t *testing.T) {
		book := routineBook(t, "Morning Cardio", "Strength")

		res, err := FindRoutines{Keywords: []string{"cardio"}}.Execute(book)
		require.NoError(t, err)
		assert.Equal(t, "1 routines listed!", res.Feedback)
		assert.Len(t, book.FilteredRoutines(), 1)
	})
}

func TestListAndClearRoutinesExecute(t *testing.T) {
	t.Run("should reset the filter on list", func(t *testing.T) {
		book := routineBook(t, "Cardio", "Strength")
		book.SetRoutineFilter(func(routine.Routine) bool { return false })

		res, err := ListRoutines{}.Execute(book)
		require.NoError(t, err)
		assert.Equal(t, "Listed all routines", res.Feedback)
		assert.Len(t, book.FilteredRoutines(), 2)
	})

	t.Run("should empty the list on clear", func(t *testing.T) {
		book := routineBook(t, "Cardio")

		res, err := ClearRoutines{}.Execute(book)
		require.NoError(t, err)
		assert.Equal(t, "FitBook routines have been cleared!", res.Feedback)
		assert.Empty(t, book.Routines())
	})
}
