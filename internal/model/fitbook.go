// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package model holds the in-memory FitBook: the client and routine lists
// backing every front end, together with the per-list filter state that
// display indices are resolved against.
package model

import (
	"errors"
	"slices"

	"fitbook/internal/client"
	"fitbook/internal/routine"
)

// Errors returned by list mutations. The index errors are distinct from
// parse failures: the index was well-formed but does not address an entry
// in the currently displayed list.
var (
	ErrDuplicateClient   = errors.New("this client already exists in FitBook")
	ErrDuplicateRoutine  = errors.New("this routine already exists in FitBook")
	ErrClientNotFound    = errors.New("client does not exist in FitBook")
	ErrRoutineNotFound   = errors.New("routine does not exist in FitBook")
	ErrClientIndexRange  = errors.New("the client index provided is invalid")
	ErrRoutineIndexRange = errors.New("the routine index provided is invalid")
)

// ClientPredicate selects clients for the filtered client view.
type ClientPredicate func(client.Client) bool

// RoutinePredicate selects routines for the filtered routine view.
type RoutinePredicate func(routine.Routine) bool

// FitBook is the mutable application state. It is not safe for concurrent
// use; callers that share a FitBook across goroutines (the HTTP API does)
// must serialize access, which logic.Manager takes care of.
type FitBook struct {
	clients  []client.Client
	routines []routine.Routine

	clientFilter  ClientPredicate // nil means show all
	routineFilter RoutinePredicate
}

// New returns an empty FitBook with both filters showing everything.
func New() *FitBook {
	return &FitBook{}
}

// NewFrom returns a FitBook seeded with the given lists. The slices are
// copied; filters start at show-all.
func NewFrom(clients []client.Client, routines []routine.Routine) *FitBook {
	return &FitBook{
		clients:  slices.Clone(clients),
		routines: slices.Clone(routines),
	}
}

// --- Clients ---

// Clients returns a copy of the full client list in insertion order.
func (f *FitBook) Clients() []client.Client {
	return slices.Clone(f.clients)
}

// FilteredClients returns the clients matching the current filter,
// preserving the underlying order.
func (f *FitBook) FilteredClients() []client.Client {
	if f.clientFilter == nil {
		return slices.Clone(f.clients)
	}
	var out []client.Client
	for _, c := range f.clients {
		if f.clientFilter(c) {
			out = append(out, c)
		}
	}
	return out
}

// FilteredClientAt resolves a one-based display index against the filtered
// client list.
func (f *FitBook) FilteredClientAt(oneBased int) (client.Client, error) {
	filtered := f.FilteredClients()
	if oneBased < 1 || oneBased > len(filtered) {
		return client.Client{}, ErrClientIndexRange
	}
	return filtered[oneBased-1], nil
}

// HasClient reports whether a client identical (by name) to c is present.
func (f *FitBook) HasClient(c client.Client) bool {
	return slices.ContainsFunc(f.clients, c.SameAs)
}

// AddClient appends c, rejecting duplicates.
func (f *FitBook) AddClient(c client.Client) error {
	if f.HasClient(c) {
		return ErrDuplicateClient
	}
	f.clients = append(f.clients, c)
	return nil
}

// SetClient replaces target with edited, keeping its position. The edit is
// rejected when edited duplicates a client other than the target.
func (f *FitBook) SetClient(target, edited client.Client) error {
	idx := slices.IndexFunc(f.clients, func(c client.Client) bool { return c.ID == target.ID })
	if idx < 0 {
		return ErrClientNotFound
	}
	for i, c := range f.clients {
		if i != idx && c.SameAs(edited) {
			return ErrDuplicateClient
		}
	}
	f.clients[idx] = edited
	return nil
}

// RemoveClient deletes the client with target's ID.
func (f *FitBook) RemoveClient(target client.Client) error {
	idx := slices.IndexFunc(f.clients, func(c client.Client) bool { return c.ID == target.ID })
	if idx < 0 {
		return ErrClientNotFound
	}
	f.clients = slices.Delete(f.clients, idx, idx+1)
	return nil
}

// ClearClients removes every client and resets the client filter.
func (f *FitBook) ClearClients() {
	f.clients = nil
	f.clientFilter = nil
}

// SetClientFilter installs a filter for the client view. A nil predicate
// shows all clients.
func (f *FitBook) SetClientFilter(p ClientPredicate) {
	f.clientFilter = p
}

// ResetClientFilter restores the show-all client view.
func (f *FitBook) ResetClientFilter() {
	f.clientFilter = nil
}

// --- Routines ---

// Routines returns a copy of the full routine list in insertion order.
func (f *FitBook) Routines() []routine.Routine {
	return slices.Clone(f.routines)
}

// FilteredRoutines returns the routines matching the current filter,
// preserving the underlying order.
func (f *FitBook) FilteredRoutines() []routine.Routine {
	if f.routineFilter == nil {
		return slices.Clone(f.routines)
	}
	var out []routine.Routine
	for _, r := range f.routines {
		if f.routineFilter(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilteredRoutineAt resolves a one-based display index against the filtered
// routine list.
func (f *FitBook) FilteredRoutineAt(oneBased int) (routine.Routine, error) {
	filtered := f.FilteredRoutines()
	if oneBased < 1 || oneBased > len(filtered) {
		return routine.Routine{}, ErrRoutineIndexRange
	}
	return filtered[oneBased-1], nil
}

// HasRoutine reports whether a routine identical (by name) to r is present.
func (f *FitBook) HasRoutine(r routine.Routine) bool {
	return slices.ContainsFunc(f.routines, r.SameAs)
}

// AddRoutine appends r, rejecting duplicates.
func (f *FitBook) AddRoutine(r routine.Routine) error {
	if f.HasRoutine(r) {
		return ErrDuplicateRoutine
	}
	f.routines = append(f.routines, r)
	return nil
}

// SetRoutine replaces target with edited, keeping its position. The edit is
// rejected when edited duplicates a routine other than the target.
func (f *FitBook) SetRoutine(target, edited routine.Routine) error {
	idx := slices.IndexFunc(f.routines, func(r routine.Routine) bool { return r.ID == target.ID })
	if idx < 0 {
		return ErrRoutineNotFound
	}
	for i, r := range f.routines {
		if i != idx && r.SameAs(edited) {
			return ErrDuplicateRoutine
		}
	}
	f.routines[idx] = edited
	return nil
}

// RemoveRoutine deletes the routine with target's ID.
func (f *FitBook) RemoveRoutine(target routine.Routine) error {
	idx := slices.IndexFunc(f.routines, func(r routine.Routine) bool { return r.ID == target.ID })
	if idx < 0 {
		return ErrRoutineNotFound
	}
	f.routines = slices.Delete(f.routines, idx, idx+1)
	return nil
}

// ClearRoutines removes every routine and resets the routine filter.
func (f *FitBook) ClearRoutines() {
	f.routines = nil
	f.routineFilter = nil
}

// SetRoutineFilter installs a filter for the routine view. A nil predicate
// shows all routines.
func (f *FitBook) SetRoutineFilter(p RoutinePredicate) {
	f.routineFilter = p
}

// ResetRoutineFilter restores the show-all routine view.
func (f *FitBook) ResetRoutineFilter() {
	f.routineFilter = nil
}
