// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package parser

import (
	"testing"

	"fitbook/internal/client"
	"fitbook/internal/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAddArgs = "n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 w/70 g/M cal/2200"

// assertParseError asserts that parsing fails with a user-facing parse error
// carrying exactly msg.
func assertParseError(t *testing.T, input, msg string) {
	t.Helper()
	_, err := Parse(input)
	require.Error(t, err)
	var parseErr *Error
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, msg, parseErr.Error())
}

func TestParse(t *testing.T) {
	t.Run("should reject empty input", func(t *testing.T) {
		assertParseError(t, "   ", "Invalid command format!\n"+command.HelpUsage)
	})

	t.Run("should reject an unknown command word", func(t *testing.T) {
		_, err := Parse("unknownCommand")
		assert.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("should treat command words as case-sensitive", func(t *testing.T) {
		_, err := Parse("LIST")
		assert.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("should parse the argument-free commands", func(t *testing.T) {
		for input, want := range map[string]command.Command{
			"list":          command.ListClients{},
			"clear":         command.ClearClients{},
			"listRoutines":  command.ListRoutines{},
			"clearRoutines": command.ClearRoutines{},
			"help":          command.Help{},
			"exit":          command.Exit{},
		} {
			cmd, err := Parse(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, cmd, "input %q", input)
		}
	})
}

func TestParseAddClient(t *testing.T) {
	t.Run("should build a client from all fields", func(t *testing.T) {
		cmd, err := Parse("add " + validAddArgs + " app/12-12-2026 t/gym t/vip")
		require.NoError(t, err)

		add, ok := cmd.(command.AddClient)
		require.True(t, ok)
		c := add.Client
		assert.Equal(t, client.Name("John Doe"), c.Name)
		assert.Equal(t, client.Phone("98765432"), c.Phone)
		assert.Equal(t, client.Email("johnd@example.com"), c.Email)
		assert.Equal(t, client.Address("311, Clementi Ave 2"), c.Address)
		assert.Equal(t, client.Weight("70"), c.Weight)
		assert.Equal(t, client.Gender("M"), c.Gender)
		assert.Equal(t, client.Calorie(2200), c.Calorie)
		require.Len(t, c.Appointments, 1)
		assert.Equal(t, "12-12-2026", c.Appointments[0].String())
		assert.Equal(t, []client.Tag{"gym", "vip"}, c.Tags)
	})

	t.Run("should accept the command without appointments and tags", func(t *testing.T) {
		cmd, err := Parse("add " + validAddArgs)
		require.NoError(t, err)
		add := cmd.(command.AddClient)
		assert.Nil(t, add.Client.Appointments)
		assert.Nil(t, add.Client.Tags)
	})

	t.Run("should reject a missing required field", func(t *testing.T) {
		assertParseError(t, "add n/John Doe p/98765432",
			"Invalid command format!\n"+command.AddUsage)
	})

	t.Run("should reject a non-empty preamble", func(t *testing.T) {
		assertParseError(t, "add something "+validAddArgs,
			"Invalid command format!\n"+command.AddUsage)
	})

	t.Run("should reject a repeated single-valued field", func(t *testing.T) {
		assertParseError(t, "add "+validAddArgs+" p/12345678",
			"Multiple values specified for the single-valued field p/")
	})

	t.Run("should surface field validation messages", func(t *testing.T) {
		assertParseError(t,
			"add n/John Doe p/98 e/johnd@example.com a/Somewhere w/70 g/M cal/2200",
			client.PhoneConstraints)
	})
}

func TestParseEditClient(t *testing.T) {
	t.Run("should parse index and changed fields", func(t *testing.T) {
		cmd, err := Parse("edit 2 p/91234567 e/johndoe@example.com")
		require.NoError(t, err)

		edit, ok := cmd.(command.EditClient)
		require.True(t, ok)
		assert.Equal(t, 2, edit.Index)
		require.NotNil(t, edit.Descriptor.Phone)
		assert.Equal(t, client.Phone("91234567"), *edit.Descriptor.Phone)
		require.NotNil(t, edit.Descriptor.Email)
		assert.Nil(t, edit.Descriptor.Name)
		assert.False(t, edit.Descriptor.TagsSet)
	})

	t.Run("should treat a lone empty t/ as clearing the tags", func(t *testing.T) {
		cmd, err := Parse("edit 1 t/")
		require.NoError(t, err)

		edit := cmd.(command.EditClient)
		assert.True(t, edit.Descriptor.TagsSet)
		assert.Empty(t, edit.Descriptor.Tags)
	})

	t.Run("should treat a lone empty app/ as clearing the appointments", func(t *testing.T) {
		cmd, err := Parse("edit 1 app/")
		require.NoError(t, err)

		edit := cmd.(command.EditClient)
		assert.True(t, edit.Descriptor.AppointmentsSet)
		assert.Empty(t, edit.Descriptor.Appointments)
	})

	t.Run("should reject an edit with no fields", func(t *testing.T) {
		assertParseError(t, "edit 1", "Invalid command format!\n"+command.EditUsage)
	})

	t.Run("should reject a missing or malformed index", func(t *testing.T) {
		for _, input := range []string{"edit n/Alice", "edit 0 n/Alice", "edit -1 n/Alice", "edit x n/Alice"} {
			assertParseError(t, input, "Invalid command format!\n"+command.EditUsage)
		}
	})

	t.Run("should reject a repeated single-valued field", func(t *testing.T) {
		assertParseError(t, "edit 1 g/M g/F",
			"Multiple values specified for the single-valued field g/")
	})

	t.Run("should surface field validation messages", func(t *testing.T) {
		assertParseError(t, "edit 1 app/tomorrow", client.AppointmentConstraints)
	})
}

func TestParseDeleteClient(t *testing.T) {
	t.Run("should parse a one-based index", func(t *testing.T) {
		cmd, err := Parse("delete 3")
		require.NoError(t, err)
		assert.Equal(t, command.DeleteClient{Index: 3}, cmd)
	})

	t.Run("should reject zero, negative and non-numeric indices", func(t *testing.T) {
		for _, input := range []string{"delete 0", "delete -2", "delete abc", "delete"} {
			assertParseError(t, input, "Invalid command format!\n"+command.DeleteUsage)
		}
	})
}

func TestParseFindClients(t *testing.T) {
	t.Run("should split keywords on whitespace", func(t *testing.T) {
		cmd, err := Parse("find alex   david")
		require.NoError(t, err)
		assert.Equal(t, command.FindClients{Keywords: []string{"alex", "david"}}, cmd)
	})

	t.Run("should reject an empty keyword list", func(t *testing.T) {
		assertParseError(t, "find  ", "Invalid command format!\n"+command.FindUsage)
	})
}
