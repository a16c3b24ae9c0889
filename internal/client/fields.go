// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package client defines the client entity tracked by FitBook and the
// validated value types for each of its fields. Construction goes through
// the Parse* functions so that an invalid value can never enter the model.
package client

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validation messages surfaced to the user when a field value is rejected.
const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints   = "Emails should be of the format local-part@domain"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	WeightConstraints  = "Weights should be a positive number in kilograms"
	GenderConstraints  = "Gender should be either M or F"
	CalorieConstraints = "Calorie targets should be a positive whole number"
	TagConstraints     = "Tag names should be alphanumeric"
)

var (
	nameRegexp  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRegexp = regexp.MustCompile(`^[0-9]{3,}$`)
	emailRegexp = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)
	tagRegexp   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Name is a client's display name. Names are the identity of a client:
// two clients with equal names are considered the same client.
type Name string

func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRegexp.MatchString(s) {
		return "", fmt.Errorf("%s", NameConstraints)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Phone is a contact number, digits only.
type Phone string

func ParsePhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegexp.MatchString(s) {
		return "", fmt.Errorf("%s", PhoneConstraints)
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Email is a contact email address.
type Email string

func ParseEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegexp.MatchString(s) {
		return "", fmt.Errorf("%s", EmailConstraints)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Address is a free-form postal address.
type Address string

func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s", AddressConstraints)
	}
	return Address(s), nil
}

func (a Address) String() string { return string(a) }

// Weight is a body weight in kilograms. Stored as entered (e.g. "72.5").
type Weight string

func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return "", fmt.Errorf("%s", WeightConstraints)
	}
	return Weight(s), nil
}

func (w Weight) String() string { return string(w) }

// Kilograms returns the numeric value of the weight.
func (w Weight) Kilograms() float64 {
	v, _ := strconv.ParseFloat(string(w), 64)
	return v
}

// Gender is either "M" or "F". Input is case-insensitive, stored uppercase.
type Gender string

func ParseGender(s string) (Gender, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s != "M" && s != "F" {
		return "", fmt.Errorf("%s", GenderConstraints)
	}
	return Gender(s), nil
}

func (g Gender) String() string { return string(g) }

// Calorie is a daily calorie target in kcal.
type Calorie int

func ParseCalorie(s string) (Calorie, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s", CalorieConstraints)
	}
	return Calorie(v), nil
}

func (c Calorie) String() string { return strconv.Itoa(int(c)) }

// Tag is a single-word label attached to a client.
type Tag string

func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagRegexp.MatchString(s) {
		return "", fmt.Errorf("%s", TagConstraints)
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }
