// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import (
	"fmt"
	"strings"

	"fitbook/internal/client"
	"fitbook/internal/model"
)

// AddClient adds a new client to the book.
type AddClient struct {
	Client client.Client
}

func (c AddClient) Execute(book *model.FitBook) (Result, error) {
	if err := book.AddClient(c.Client); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("New client added: %s", c.Client),
		Focus:    FocusClients,
	}, nil
}

// EditClientDescriptor carries the fields to change on an existing client.
// Nil fields are left untouched. An empty (non-nil) Appointments or Tags
// slice clears the respective collection.
type EditClientDescriptor struct {
	Name         *client.Name
	Phone        *client.Phone
	Email        *client.Email
	Address      *client.Address
	Weight       *client.Weight
	Gender       *client.Gender
	Calorie      *client.Calorie
	Appointments []client.Appointment
	Tags         []client.Tag

	// AppointmentsSet / TagsSet distinguish "clear the collection" from
	// "leave it alone", since both present as an empty slice.
	AppointmentsSet bool
	TagsSet         bool
}

// AnyFieldSet reports whether the descriptor would change anything.
func (d EditClientDescriptor) AnyFieldSet() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil ||
		d.Weight != nil || d.Gender != nil || d.Calorie != nil ||
		d.AppointmentsSet || d.TagsSet
}

// apply returns a copy of target with the descriptor's fields substituted.
// The ID is preserved so the edit replaces rather than re-creates the client.
func (d EditClientDescriptor) apply(target client.Client) client.Client {
	edited := target
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Phone != nil {
		edited.Phone = *d.Phone
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Address != nil {
		edited.Address = *d.Address
	}
	if d.Weight != nil {
		edited.Weight = *d.Weight
	}
	if d.Gender != nil {
		edited.Gender = *d.Gender
	}
	if d.Calorie != nil {
		edited.Calorie = *d.Calorie
	}
	if d.AppointmentsSet {
		edited.Appointments = client.NormalizeAppointments(d.Appointments)
	}
	if d.TagsSet {
		edited.Tags = client.NormalizeTags(d.Tags)
	}
	return edited
}

// EditClient edits the client at a one-based index into the filtered list.
type EditClient struct {
	Index      int
	Descriptor EditClientDescriptor
}

func (c EditClient) Execute(book *model.FitBook) (Result, error) {
	target, err := book.FilteredClientAt(c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.apply(target)
	if err := book.SetClient(target, edited); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Edited client: %s", edited),
		Focus:    FocusClients,
	}, nil
}

// DeleteClient removes the client at a one-based index into the filtered list.
type DeleteClient struct {
	Index int
}

func (c DeleteClient) Execute(book *model.FitBook) (Result, error) {
	target, err := book.FilteredClientAt(c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := book.RemoveClient(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted client: %s", target),
		Focus:    FocusClients,
	}, nil
}

// ListClients resets the client filter to show everything.
type ListClients struct{}

func (ListClients) Execute(book *model.FitBook) (Result, error) {
	book.ResetClientFilter()
	return Result{Feedback: "Listed all clients", Focus: FocusClients}, nil
}

// FindClients filters the client view by case-insensitive whole-word name
// keywords, any of which may match.
type FindClients struct {
	Keywords []string
}

// NameMatchesKeywords is the predicate FindClients installs: true when any
// keyword equals any word of the client's name, ignoring case.
func NameMatchesKeywords(keywords []string) model.ClientPredicate {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(c client.Client) bool {
		for _, word := range strings.Fields(strings.ToLower(c.Name.String())) {
			for _, k := range lowered {
				if word == k {
					return true
				}
			}
		}
		return false
	}
}

func (c FindClients) Execute(book *model.FitBook) (Result, error) {
	book.SetClientFilter(NameMatchesKeywords(c.Keywords))
	n := len(book.FilteredClients())
	return Result{
		Feedback: fmt.Sprintf("%d clients listed!", n),
		Focus:    FocusClients,
	}, nil
}

// ClearClients empties the client list.
type ClearClients struct{}

func (ClearClients) Execute(book *model.FitBook) (Result, error) {
	book.ClearClients()
	return Result{Feedback: "FitBook clients have been cleared!", Focus: FocusClients}, nil
}
