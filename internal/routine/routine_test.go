// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	t.Run("should accept alphanumeric names with spaces", func(t *testing.T) {
		n, err := ParseName("Leg Day 2")
		require.NoError(t, err)
		assert.Equal(t, "Leg Day 2", n.String())
	})

	t.Run("should reject blank names", func(t *testing.T) {
		_, err := ParseName("  ")
		assert.EqualError(t, err, NameConstraints)
	})

	t.Run("should reject symbols", func(t *testing.T) {
		_, err := ParseName("HIIT!")
		assert.Error(t, err)
	})
}

func TestParseExercise(t *testing.T) {
	t.Run("should accept any non-blank value", func(t *testing.T) {
		e, err := ParseExercise(" Squats 3x12 @ 60kg ")
		require.NoError(t, err)
		assert.Equal(t, "Squats 3x12 @ 60kg", e.String())
	})

	t.Run("should reject blank values", func(t *testing.T) {
		_, err := ParseExercise("   ")
		assert.EqualError(t, err, ExerciseConstraints)
	})
}

func TestRoutine(t *testing.T) {
	t.Run("should preserve exercise order as entered", func(t *testing.T) {
		r := New("Cardio", []Exercise{"Warmup", "Sprints 8x200m", "Cooldown"})
		assert.Equal(t, []Exercise{"Warmup", "Sprints 8x200m", "Cooldown"}, r.Exercises)
	})

	t.Run("should assign a unique ID to each routine", func(t *testing.T) {
		assert.NotEqual(t, New("Cardio", nil).ID, New("Cardio", nil).ID)
	})

	t.Run("should use the name as identity", func(t *testing.T) {
		a := New("Cardio", []Exercise{"Sprints"})
		b := New("Cardio", []Exercise{"Rowing"})
		assert.True(t, a.SameAs(b))
		assert.False(t, a.Equal(b))
	})

	t.Run("should ignore the ID in Equal", func(t *testing.T) {
		a := New("Core", []Exercise{"Plank 3x60s"})
		b := New("Core", []Exercise{"Plank 3x60s"})
		assert.True(t, a.Equal(b))
	})

	t.Run("should render the name and exercises", func(t *testing.T) {
		r := New("Core", []Exercise{"Plank 3x60s", "Crunches 3x20"})
		assert.Equal(t, "Core; Exercises: Plank 3x60s, Crunches 3x20", r.String())
	})

	t.Run("should render a bare name without exercises", func(t *testing.T) {
		assert.Equal(t, "Rest", New("Rest", nil).String())
	})
}
