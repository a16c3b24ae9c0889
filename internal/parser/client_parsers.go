// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package parser

import (
	"fitbook/internal/client"
	"fitbook/internal/command"
)

var clientPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress,
	PrefixWeight, PrefixGender, PrefixCalorie, PrefixAppointment, PrefixTag,
}

// requireOne fetches a mandatory single-valued prefix for the add command.
func requireOne(a arguments, p Prefix, usage string) (string, error) {
	v, ok, dup := a.one(p)
	if dup {
		return "", duplicatePrefix(p)
	}
	if !ok {
		return "", invalidFormat(usage)
	}
	return v, nil
}

func parseAddClient(args string) (command.Command, error) {
	a := tokenize(args, clientPrefixes...)
	if a.preamble != "" {
		return nil, invalidFormat(command.AddUsage)
	}

	nameStr, err := requireOne(a, PrefixName, command.AddUsage)
	if err != nil {
		return nil, err
	}
	phoneStr, err := requireOne(a, PrefixPhone, command.AddUsage)
	if err != nil {
		return nil, err
	}
	emailStr, err := requireOne(a, PrefixEmail, command.AddUsage)
	if err != nil {
		return nil, err
	}
	addressStr, err := requireOne(a, PrefixAddress, command.AddUsage)
	if err != nil {
		return nil, err
	}
	weightStr, err := requireOne(a, PrefixWeight, command.AddUsage)
	if err != nil {
		return nil, err
	}
	genderStr, err := requireOne(a, PrefixGender, command.AddUsage)
	if err != nil {
		return nil, err
	}
	calorieStr, err := requireOne(a, PrefixCalorie, command.AddUsage)
	if err != nil {
		return nil, err
	}

	name, err := client.ParseName(nameStr)
	if err != nil {
		return nil, fieldError(err)
	}
	phone, err := client.ParsePhone(phoneStr)
	if err != nil {
		return nil, fieldError(err)
	}
	email, err := client.ParseEmail(emailStr)
	if err != nil {
		return nil, fieldError(err)
	}
	address, err := client.ParseAddress(addressStr)
	if err != nil {
		return nil, fieldError(err)
	}
	weight, err := client.ParseWeight(weightStr)
	if err != nil {
		return nil, fieldError(err)
	}
	gender, err := client.ParseGender(genderStr)
	if err != nil {
		return nil, fieldError(err)
	}
	calorie, err := client.ParseCalorie(calorieStr)
	if err != nil {
		return nil, fieldError(err)
	}

	appointments, err := parseAppointments(a.all(PrefixAppointment))
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(a.all(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.AddClient{
		Client: client.New(name, phone, email, address, weight, gender, calorie, appointments, tags),
	}, nil
}

func parseEditClient(args string) (command.Command, error) {
	a := tokenize(args, clientPrefixes...)
	idx, err := parseIndex(a.preamble, command.EditUsage)
	if err != nil {
		return nil, err
	}

	var desc command.EditClientDescriptor
	if v, ok, dup := a.one(PrefixName); dup {
		return nil, duplicatePrefix(PrefixName)
	} else if ok {
		name, err := client.ParseName(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Name = &name
	}
	if v, ok, dup := a.one(PrefixPhone); dup {
		return nil, duplicatePrefix(PrefixPhone)
	} else if ok {
		phone, err := client.ParsePhone(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Phone = &phone
	}
	if v, ok, dup := a.one(PrefixEmail); dup {
		return nil, duplicatePrefix(PrefixEmail)
	} else if ok {
		email, err := client.ParseEmail(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Email = &email
	}
	if v, ok, dup := a.one(PrefixAddress); dup {
		return nil, duplicatePrefix(PrefixAddress)
	} else if ok {
		address, err := client.ParseAddress(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Address = &address
	}
	if v, ok, dup := a.one(PrefixWeight); dup {
		return nil, duplicatePrefix(PrefixWeight)
	} else if ok {
		weight, err := client.ParseWeight(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Weight = &weight
	}
	if v, ok, dup := a.one(PrefixGender); dup {
		return nil, duplicatePrefix(PrefixGender)
	} else if ok {
		gender, err := client.ParseGender(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Gender = &gender
	}
	if v, ok, dup := a.one(PrefixCalorie); dup {
		return nil, duplicatePrefix(PrefixCalorie)
	} else if ok {
		calorie, err := client.ParseCalorie(v)
		if err != nil {
			return nil, fieldError(err)
		}
		desc.Calorie = &calorie
	}

	if vs := a.all(PrefixAppointment); vs != nil {
		desc.AppointmentsSet = true
		if !(len(vs) == 1 && vs[0] == "") { // a lone empty app/ clears the set
			desc.Appointments, err = parseAppointments(vs)
			if err != nil {
				return nil, err
			}
		}
	}
	if vs := a.all(PrefixTag); vs != nil {
		desc.TagsSet = true
		if !(len(vs) == 1 && vs[0] == "") { // a lone empty t/ clears the set
			desc.Tags, err = parseTags(vs)
			if err != nil {
				return nil, err
			}
		}
	}

	if !desc.AnyFieldSet() {
		return nil, invalidFormat(command.EditUsage)
	}
	return command.EditClient{Index: idx, Descriptor: desc}, nil
}

func parseAppointments(values []string) ([]client.Appointment, error) {
	var out []client.Appointment
	for _, v := range values {
		a, err := client.ParseAppointment(v)
		if err != nil {
			return nil, fieldError(err)
		}
		out = append(out, a)
	}
	return out, nil
}

func parseTags(values []string) ([]client.Tag, error) {
	var out []client.Tag
	for _, v := range values {
		t, err := client.ParseTag(v)
		if err != nil {
			return nil, fieldError(err)
		}
		out = append(out, t)
	}
	return out, nil
}
