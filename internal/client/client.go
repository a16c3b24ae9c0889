// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package client

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Client is a tracked individual with contact details and fitness attributes.
// The zero value is not valid; construct clients with New or via the field
// Parse functions.
type Client struct {
	ID           uuid.UUID
	Name         Name
	Phone        Phone
	Email        Email
	Address      Address
	Weight       Weight
	Gender       Gender
	Calorie      Calorie
	Appointments []Appointment
	Tags         []Tag
}

// New assembles a client from already-validated fields and assigns a fresh ID.
// Appointments and tags are deduplicated and kept in a stable sorted order.
func New(name Name, phone Phone, email Email, address Address, weight Weight,
	gender Gender, calorie Calorie, appointments []Appointment, tags []Tag) Client {
	return Client{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		Address:      address,
		Weight:       weight,
		Gender:       gender,
		Calorie:      calorie,
		Appointments: NormalizeAppointments(appointments),
		Tags:         NormalizeTags(tags),
	}
}

// SameAs reports whether two clients refer to the same person.
// Identity is by name only; it is the duplicate-detection rule of the model.
func (c Client) SameAs(other Client) bool {
	return c.Name == other.Name
}

// Equal reports full field equality, ignoring the ID.
func (c Client) Equal(other Client) bool {
	return c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		c.Address == other.Address &&
		c.Weight == other.Weight &&
		c.Gender == other.Gender &&
		c.Calorie == other.Calorie &&
		slices.Equal(c.Appointments, other.Appointments) &&
		slices.Equal(c.Tags, other.Tags)
}

func (c Client) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s; Weight: %s; Gender: %s; Calories: %s",
		c.Name, c.Phone, c.Email, c.Address, c.Weight, c.Gender, c.Calorie)
	if len(c.Appointments) > 0 {
		b.WriteString("; Appointments: ")
		for i, a := range c.Appointments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
	}
	if len(c.Tags) > 0 {
		b.WriteString("; Tags: ")
		for i, t := range c.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "[%s]", t)
		}
	}
	return b.String()
}

// NormalizeTags sorts and deduplicates a tag list. A nil slice stays nil.
func NormalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

// NormalizeAppointments sorts appointments chronologically and drops duplicates.
func NormalizeAppointments(appointments []Appointment) []Appointment {
	if len(appointments) == 0 {
		return nil
	}
	out := slices.Clone(appointments)
	slices.SortFunc(out, func(a, b Appointment) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return slices.Compact(out)
}
