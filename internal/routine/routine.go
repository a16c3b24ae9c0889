// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package routine defines the exercise routine entity: a named, ordered
// collection of exercises maintained independently of any client.
package routine

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Validation messages surfaced to the user when a field value is rejected.
const (
	NameConstraints     = "Routine names should only contain alphanumeric characters and spaces, and it should not be blank"
	ExerciseConstraints = "Exercises can take any values, and it should not be blank"
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Name is a routine's display name and its identity: two routines with
// equal names are considered the same routine.
type Name string

func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRegexp.MatchString(s) {
		return "", fmt.Errorf("%s", NameConstraints)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Exercise is a single free-text exercise entry within a routine.
type Exercise string

func ParseExercise(s string) (Exercise, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s", ExerciseConstraints)
	}
	return Exercise(s), nil
}

func (e Exercise) String() string { return string(e) }

// Routine is a named collection of exercises. Exercise order is meaningful
// and preserved as entered.
type Routine struct {
	ID        uuid.UUID
	Name      Name
	Exercises []Exercise
}

// New assembles a routine from already-validated fields with a fresh ID.
func New(name Name, exercises []Exercise) Routine {
	return Routine{
		ID:        uuid.New(),
		Name:      name,
		Exercises: slices.Clone(exercises),
	}
}

// SameAs reports whether two routines refer to the same routine.
// Identity is by routine name only.
func (r Routine) SameAs(other Routine) bool {
	return r.Name == other.Name
}

// Equal reports full field equality, ignoring the ID.
func (r Routine) Equal(other Routine) bool {
	return r.Name == other.Name && slices.Equal(r.Exercises, other.Exercises)
}

func (r Routine) String() string {
	var b strings.Builder
	b.WriteString(r.Name.String())
	if len(r.Exercises) > 0 {
		b.WriteString("; Exercises: ")
		for i, e := range r.Exercises {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
	}
	return b.String()
}
