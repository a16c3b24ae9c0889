// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("should put everything before the first prefix into the preamble", func(t *testing.T) {
		a := tokenize("2 n/Alice", clientPrefixes...)
		assert.Equal(t, "2", a.preamble)
		assert.Equal(t, []string{"Alice"}, a.all(PrefixName))
	})

	t.Run("should leave values free to contain slashes", func(t *testing.T) {
		a := tokenize("a/Blk 2 #02/25 p/98765432", clientPrefixes...)
		assert.Equal(t, []string{"Blk 2 #02/25"}, a.all(PrefixAddress))
		assert.Equal(t, []string{"98765432"}, a.all(PrefixPhone))
	})

	t.Run("should only split on whitespace-preceded prefixes", func(t *testing.T) {
		// the a/ inside cal/ must not be read as an address prefix
		a := tokenize("n/Bob cal/2200", clientPrefixes...)
		assert.Nil(t, a.all(PrefixAddress))
		assert.Equal(t, []string{"2200"}, a.all(PrefixCalorie))
	})

	t.Run("should not confuse e/ with ex/", func(t *testing.T) {
		a := tokenize("r/Cardio ex/Squats 3x12", routinePrefixes...)
		assert.Equal(t, []string{"Squats 3x12"}, a.all(PrefixExercise))
	})

	t.Run("should collect repeated prefixes in input order", func(t *testing.T) {
		a := tokenize("t/gym t/vip t/am", clientPrefixes...)
		assert.Equal(t, []string{"gym", "vip", "am"}, a.all(PrefixTag))
	})

	t.Run("should record an empty value for a bare prefix", func(t *testing.T) {
		a := tokenize("1 t/", clientPrefixes...)
		assert.Equal(t, []string{""}, a.all(PrefixTag))
	})

	t.Run("should report duplicates through one", func(t *testing.T) {
		a := tokenize("n/Alice n/Bob", clientPrefixes...)
		_, ok, dup := a.one(PrefixName)
		assert.True(t, ok)
		assert.True(t, dup)
	})

	t.Run("should report an absent prefix through one", func(t *testing.T) {
		a := tokenize("n/Alice", clientPrefixes...)
		_, ok, dup := a.one(PrefixPhone)
		assert.False(t, ok)
		assert.False(t, dup)
	})
}
