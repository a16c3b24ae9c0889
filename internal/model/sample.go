// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package model

import (
	"fitbook/internal/client"
	"fitbook/internal/routine"
)

// SampleClients returns the clients a fresh FitBook is seeded with when no
// data file exists yet.
func SampleClients() []client.Client {
	return []client.Client{
		sampleClient("Alex Yeoh", "87438807", "alexyeoh@example.com",
			"Blk 30 Geylang Street 29, #06-40", "70", "M", "2200", []string{"12-12-2026"}, []string{"gym"}),
		sampleClient("Bernice Yu", "99272758", "berniceyu@example.com",
			"Blk 30 Lorong 3 Serangoon Gardens, #07-18", "55", "F", "1800", []string{"14-12-2026 09:30"}, []string{"yoga", "gym"}),
		sampleClient("Charlotte Oliveiro", "93210283", "charlotte@example.com",
			"Blk 11 Ang Mo Kio Street 74, #11-04", "62.5", "F", "1900", []string{"12-12-2026"}, []string{"pilates"}),
		sampleClient("David Li", "91031282", "lidavid@example.com",
			"Blk 436 Serangoon Gardens Street 26, #16-43", "80", "M", "2400", []string{"15-12-2026"}, []string{"strength"}),
		sampleClient("Irfan Ibrahim", "92492021", "irfan@example.com",
			"Blk 47 Tampines Street 20, #17-35", "75", "M", "2100", []string{"16-12-2026 18:00"}, []string{"cardio"}),
		sampleClient("Roy Balakrishnan", "92624417", "royb@example.com",
			"Blk 45 Aljunied Street 85, #11-31", "68", "M", "2356", []string{"17-12-2026"}, []string{"gym"}),
	}
}

// SampleRoutines returns the routines a fresh FitBook is seeded with.
func SampleRoutines() []routine.Routine {
	return []routine.Routine{
		sampleRoutine("Cardio", "Jumping jacks 3x20", "Burpees 3x10", "Mountain climbers 3x30s"),
		sampleRoutine("Strength", "Squats 5x5", "Deadlifts 3x5", "Bench press 5x5"),
		sampleRoutine("Core", "Plank 3x60s", "Situps 3x20"),
	}
}

// NewSeeded returns a FitBook populated with the sample data.
func NewSeeded() *FitBook {
	return NewFrom(SampleClients(), SampleRoutines())
}

// sampleClient panics on invalid input; the sample data is fixed and must
// satisfy the field constraints.
func sampleClient(name, phone, email, address, weight, gender, calorie string,
	appointments, tags []string) client.Client {
	n := mustParse(client.ParseName(name))
	p := mustParse(client.ParsePhone(phone))
	e := mustParse(client.ParseEmail(email))
	a := mustParse(client.ParseAddress(address))
	w := mustParse(client.ParseWeight(weight))
	g := mustParse(client.ParseGender(gender))
	cal := mustParse(client.ParseCalorie(calorie))

	var apps []client.Appointment
	for _, s := range appointments {
		apps = append(apps, mustParse(client.ParseAppointment(s)))
	}
	var tgs []client.Tag
	for _, s := range tags {
		tgs = append(tgs, mustParse(client.ParseTag(s)))
	}
	return client.New(n, p, e, a, w, g, cal, apps, tgs)
}

func sampleRoutine(name string, exercises ...string) routine.Routine {
	n := mustParse(routine.ParseName(name))
	var exs []routine.Exercise
	for _, s := range exercises {
		exs = append(exs, mustParse(routine.ParseExercise(s)))
	}
	return routine.New(n, exs)
}

func mustParse[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
