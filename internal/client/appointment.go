// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package client

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentConstraints is shown when an appointment value is rejected.
const AppointmentConstraints = "Appointments should be of the format dd-MM-yyyy or dd-MM-yyyy HH:mm"

const (
	appointmentDateLayout     = "02-01-2006"
	appointmentDateTimeLayout = "02-01-2006 15:04"
)

// Appointment is a scheduled training session, with or without a time of day.
type Appointment struct {
	when    time.Time
	hasTime bool
}

func ParseAppointment(s string) (Appointment, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(appointmentDateTimeLayout, s); err == nil {
		return Appointment{when: t, hasTime: true}, nil
	}
	if t, err := time.Parse(appointmentDateLayout, s); err == nil {
		return Appointment{when: t}, nil
	}
	return Appointment{}, fmt.Errorf("%s", AppointmentConstraints)
}

// When returns the appointment's date, at midnight if no time was given.
func (a Appointment) When() time.Time { return a.when }

// HasTime reports whether a time of day was part of the appointment.
func (a Appointment) HasTime() bool { return a.hasTime }

func (a Appointment) String() string {
	if a.hasTime {
		return a.when.Format(appointmentDateTimeLayout)
	}
	return a.when.Format(appointmentDateLayout)
}

// Before orders appointments chronologically, date-only entries first
// within the same instant.
func (a Appointment) Before(other Appointment) bool {
	if a.when.Equal(other.when) {
		return !a.hasTime && other.hasTime
	}
	return a.when.Before(other.when)
}
