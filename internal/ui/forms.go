// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"fitbook/internal/client"
	"fitbook/internal/command"

	"github.com/charmbracelet/bubbles/textinput"
)

// --- Form Creation ---

func createAddClientForm() []textinput.Model {
	inputs := make([]textinput.Model, formFieldCount)
	var t textinput.Model

	t = textinput.New()
	t.Placeholder = "Name (e.g. John Doe)"
	t.Focus() // Initial focus
	t.CharLimit = 100
	t.Width = 40
	inputs[formFieldName] = t

	t = textinput.New()
	t.Placeholder = "Phone (digits only)"
	t.CharLimit = 20
	t.Width = 40
	inputs[formFieldPhone] = t

	t = textinput.New()
	t.Placeholder = "Email"
	t.CharLimit = 100
	t.Width = 40
	inputs[formFieldEmail] = t

	t = textinput.New()
	t.Placeholder = "Address"
	t.CharLimit = 200
	t.Width = 60
	inputs[formFieldAddress] = t

	t = textinput.New()
	t.Placeholder = "Weight in kg (e.g. 72.5)"
	t.CharLimit = 10
	t.Width = 20
	inputs[formFieldWeight] = t

	t = textinput.New()
	t.Placeholder = "Gender (M or F)"
	t.CharLimit = 1
	t.Width = 10
	inputs[formFieldGender] = t

	t = textinput.New()
	t.Placeholder = "Daily calorie target (e.g. 2200)"
	t.CharLimit = 6
	t.Width = 20
	inputs[formFieldCalorie] = t

	t = textinput.New()
	t.Placeholder = "Appointments, comma separated (dd-MM-yyyy [HH:mm], optional)"
	t.CharLimit = 200
	t.Width = 60
	inputs[formFieldAppointments] = t

	t = textinput.New()
	t.Placeholder = "Tags, comma separated (optional)"
	t.CharLimit = 100
	t.Width = 40
	inputs[formFieldTags] = t

	return inputs
}

// --- Form Processing ---

// buildAddClientFromForm validates the form fields and assembles the add
// command. It needs access to m.formInputs, hence the method receiver.
func (m *model) buildAddClientFromForm() (command.AddClient, error) {
	name, err := client.ParseName(m.formInputs[formFieldName].Value())
	if err != nil {
		return command.AddClient{}, err
	}
	phone, err := client.ParsePhone(m.formInputs[formFieldPhone].Value())
	if err != nil {
		return command.AddClient{}, err
	}
	email, err := client.ParseEmail(m.formInputs[formFieldEmail].Value())
	if err != nil {
		return command.AddClient{}, err
	}
	address, err := client.ParseAddress(m.formInputs[formFieldAddress].Value())
	if err != nil {
		return command.AddClient{}, err
	}
	weight, err := client.ParseWeight(m.formInputs[formFieldWeight].Value())
	if err != nil {
		return command.AddClient{}, err
	}
	gender, err := client.ParseGender(m.formInputs[formFieldGender].Value())
	if err != nil {
		return command.AddClient{}, err
	}
	calorie, err := client.ParseCalorie(m.formInputs[formFieldCalorie].Value())
	if err != nil {
		return command.AddClient{}, err
	}

	var appointments []client.Appointment
	for _, part := range splitCommaList(m.formInputs[formFieldAppointments].Value()) {
		a, err := client.ParseAppointment(part)
		if err != nil {
			return command.AddClient{}, err
		}
		appointments = append(appointments, a)
	}
	var tags []client.Tag
	for _, part := range splitCommaList(m.formInputs[formFieldTags].Value()) {
		t, err := client.ParseTag(part)
		if err != nil {
			return command.AddClient{}, err
		}
		tags = append(tags, t)
	}

	return command.AddClient{
		Client: client.New(name, phone, email, address, weight, gender, calorie, appointments, tags),
	}, nil
}

// splitCommaList splits a comma-separated field, dropping empty entries.
func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
