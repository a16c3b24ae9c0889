// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package parser turns a line of user input into a typed command object.
// The first word selects the command; the remainder is split into prefixed
// arguments (n/, p/, e/, ...) by the tokenizer in this file.
package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of a named argument in a command string.
type Prefix string

const (
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixAddress     Prefix = "a/"
	PrefixWeight      Prefix = "w/"
	PrefixGender      Prefix = "g/"
	PrefixCalorie     Prefix = "cal/"
	PrefixAppointment Prefix = "app/"
	PrefixTag         Prefix = "t/"
	PrefixRoutineName Prefix = "r/"
	PrefixExercise    Prefix = "ex/"
)

// arguments holds the tokenized form of a command's argument string: the
// unprefixed preamble (e.g. the index for edit/delete) and the values found
// for each prefix, in input order.
type arguments struct {
	preamble string
	values   map[Prefix][]string
}

// all returns every value given for p.
func (a arguments) all(p Prefix) []string {
	return a.values[p]
}

// one returns the value for p when given exactly once. ok is false when the
// prefix is absent; dup is true when it was repeated.
func (a arguments) one(p Prefix) (value string, ok, dup bool) {
	vs := a.values[p]
	switch len(vs) {
	case 0:
		return "", false, false
	case 1:
		return vs[0], true, false
	default:
		return "", true, true
	}
}

type prefixHit struct {
	index  int
	prefix Prefix
}

// tokenize splits args into a preamble and per-prefix values. A prefix only
// counts when it starts the string or follows whitespace, so values are free
// to contain slashes ("a/Blk 2 #02/25") without being cut apart.
func tokenize(args string, prefixes ...Prefix) arguments {
	padded := " " + args

	var hits []prefixHit
	for _, p := range prefixes {
		needle := " " + string(p)
		from := 0
		for {
			i := strings.Index(padded[from:], needle)
			if i < 0 {
				break
			}
			hits = append(hits, prefixHit{index: from + i + 1, prefix: p})
			from += i + 1
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].index < hits[j].index })

	out := arguments{values: make(map[Prefix][]string)}
	if len(hits) == 0 {
		out.preamble = strings.TrimSpace(args)
		return out
	}

	out.preamble = strings.TrimSpace(padded[1:hits[0].index])
	for i, h := range hits {
		start := h.index + len(h.prefix)
		end := len(padded)
		if i+1 < len(hits) {
			end = hits[i+1].index
		}
		value := strings.TrimSpace(padded[start:end])
		out.values[h.prefix] = append(out.values[h.prefix], value)
	}
	return out
}
