// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package storage persists the FitBook to flat JSON files and reads it back.
// Field values are stored in their user-facing string form and re-validated
// on load, so a hand-edited file cannot smuggle invalid data into the model.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fitbook/internal/client"
	"fitbook/internal/logger"
	"fitbook/internal/model"
	"fitbook/internal/routine"

	"github.com/google/uuid"
)

const (
	clientsFile  = "clients.json"
	routinesFile = "routines.json"
)

// Storage reads and writes the FitBook data files under a single directory.
type Storage struct {
	dataDir string
}

func New(dataDir string) *Storage {
	return &Storage{dataDir: dataDir}
}

func (s *Storage) ClientsPath() string  { return filepath.Join(s.dataDir, clientsFile) }
func (s *Storage) RoutinesPath() string { return filepath.Join(s.dataDir, routinesFile) }

// EnsureDataDir creates the data directory if it does not exist yet.
func (s *Storage) EnsureDataDir() error {
	if err := os.MkdirAll(s.dataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", s.dataDir, err)
	}
	return nil
}

// --- JSON shapes ---

type jsonClient struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Weight       string   `json:"weight"`
	Gender       string   `json:"gender"`
	Calorie      string   `json:"calorie"`
	Appointments []string `json:"appointments,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type jsonRoutine struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises,omitempty"`
}

type clientsFileShape struct {
	Clients []jsonClient `json:"clients"`
}

type routinesFileShape struct {
	Routines []jsonRoutine `json:"routines"`
}

func toJSONClient(c client.Client) jsonClient {
	jc := jsonClient{
		ID:      c.ID.String(),
		Name:    c.Name.String(),
		Phone:   c.Phone.String(),
		Email:   c.Email.String(),
		Address: c.Address.String(),
		Weight:  c.Weight.String(),
		Gender:  c.Gender.String(),
		Calorie: c.Calorie.String(),
	}
	for _, a := range c.Appointments {
		jc.Appointments = append(jc.Appointments, a.String())
	}
	for _, t := range c.Tags {
		jc.Tags = append(jc.Tags, t.String())
	}
	return jc
}

func (jc jsonClient) toClient() (client.Client, error) {
	id, err := uuid.Parse(jc.ID)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: invalid id: %w", jc.Name, err)
	}
	name, err := client.ParseName(jc.Name)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
	}
	phone, err := client.ParsePhone(jc.Phone)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
	}
	email, err := client.ParseEmail(jc.Email)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
	}
	address, err := client.ParseAddress(jc.Address)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
	}
	weight, err := client.ParseWeight(jc.Weight)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
	}
	gender, err := client.ParseGender(jc.Gender)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
	}
	calorie, err := client.ParseCalorie(jc.Calorie)
	if err != nil {
		return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
	}

	var appointments []client.Appointment
	for _, s := range jc.Appointments {
		a, err := client.ParseAppointment(s)
		if err != nil {
			return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
		}
		appointments = append(appointments, a)
	}
	var tags []client.Tag
	for _, s := range jc.Tags {
		t, err := client.ParseTag(s)
		if err != nil {
			return client.Client{}, fmt.Errorf("client %q: %w", jc.Name, err)
		}
		tags = append(tags, t)
	}

	return client.Client{
		ID:           id,
		Name:         name,
		Phone:        phone,
		Email:        email,
		Address:      address,
		Weight:       weight,
		Gender:       gender,
		Calorie:      calorie,
		Appointments: client.NormalizeAppointments(appointments),
		Tags:         client.NormalizeTags(tags),
	}, nil
}

func toJSONRoutine(r routine.Routine) jsonRoutine {
	jr := jsonRoutine{
		ID:   r.ID.String(),
		Name: r.Name.String(),
	}
	for _, e := range r.Exercises {
		jr.Exercises = append(jr.Exercises, e.String())
	}
	return jr
}

func (jr jsonRoutine) toRoutine() (routine.Routine, error) {
	id, err := uuid.Parse(jr.ID)
	if err != nil {
		return routine.Routine{}, fmt.Errorf("routine %q: invalid id: %w", jr.Name, err)
	}
	name, err := routine.ParseName(jr.Name)
	if err != nil {
		return routine.Routine{}, fmt.Errorf("routine %q: %w", jr.Name, err)
	}
	var exercises []routine.Exercise
	for _, s := range jr.Exercises {
		e, err := routine.ParseExercise(s)
		if err != nil {
			return routine.Routine{}, fmt.Errorf("routine %q: %w", jr.Name, err)
		}
		exercises = append(exercises, e)
	}
	return routine.Routine{ID: id, Name: name, Exercises: exercises}, nil
}

// --- Load / Save ---

// LoadClients reads the clients file. A missing file is reported via
// os.ErrNotExist so callers can decide the fallback.
func (s *Storage) LoadClients() ([]client.Client, error) {
	data, err := os.ReadFile(s.ClientsPath())
	if err != nil {
		return nil, err
	}
	var shape clientsFileShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("failed to parse clients file %s: %w", s.ClientsPath(), err)
	}
	var out []client.Client
	for _, jc := range shape.Clients {
		c, err := jc.toClient()
		if err != nil {
			return nil, fmt.Errorf("clients file %s: %w", s.ClientsPath(), err)
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadRoutines reads the routines file. A missing file is reported via
// os.ErrNotExist so callers can decide the fallback.
func (s *Storage) LoadRoutines() ([]routine.Routine, error) {
	data, err := os.ReadFile(s.RoutinesPath())
	if err != nil {
		return nil, err
	}
	var shape routinesFileShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("failed to parse routines file %s: %w", s.RoutinesPath(), err)
	}
	var out []routine.Routine
	for _, jr := range shape.Routines {
		r, err := jr.toRoutine()
		if err != nil {
			return nil, fmt.Errorf("routines file %s: %w", s.RoutinesPath(), err)
		}
		out = append(out, r)
	}
	return out, nil
}

// SaveClients writes the full client list, replacing the file.
func (s *Storage) SaveClients(clients []client.Client) error {
	if err := s.EnsureDataDir(); err != nil {
		return err
	}
	shape := clientsFileShape{Clients: []jsonClient{}}
	for _, c := range clients {
		shape.Clients = append(shape.Clients, toJSONClient(c))
	}
	data, err := json.MarshalIndent(shape, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal clients: %w", err)
	}
	if err := os.WriteFile(s.ClientsPath(), data, 0640); err != nil {
		return fmt.Errorf("failed to write clients file %s: %w", s.ClientsPath(), err)
	}
	return nil
}

// SaveRoutines writes the full routine list, replacing the file.
func (s *Storage) SaveRoutines(routines []routine.Routine) error {
	if err := s.EnsureDataDir(); err != nil {
		return err
	}
	shape := routinesFileShape{Routines: []jsonRoutine{}}
	for _, r := range routines {
		shape.Routines = append(shape.Routines, toJSONRoutine(r))
	}
	data, err := json.MarshalIndent(shape, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal routines: %w", err)
	}
	if err := os.WriteFile(s.RoutinesPath(), data, 0640); err != nil {
		return fmt.Errorf("failed to write routines file %s: %w", s.RoutinesPath(), err)
	}
	return nil
}

// Save persists the whole book, both files.
func (s *Storage) Save(book *model.FitBook) error {
	if err := s.SaveClients(book.Clients()); err != nil {
		return err
	}
	return s.SaveRoutines(book.Routines())
}

// LoadBook reads both data files applying the startup fallback policy:
// a missing file seeds sample data, an unreadable or invalid file starts
// that list empty (never partial) with a logged warning.
func (s *Storage) LoadBook() *model.FitBook {
	clients, err := s.LoadClients()
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No clients file found, seeding sample clients.", "path", s.ClientsPath())
			clients = model.SampleClients()
		} else {
			logger.Warn("Could not load clients file, starting with an empty client list.", "error", err)
			clients = nil
		}
	}

	routines, err := s.LoadRoutines()
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No routines file found, seeding sample routines.", "path", s.RoutinesPath())
			routines = model.SampleRoutines()
		} else {
			logger.Warn("Could not load routines file, starting with an empty routine list.", "error", err)
			routines = nil
		}
	}

	return model.NewFrom(clients, routines)
}
