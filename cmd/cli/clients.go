// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"
	"time"

	"fitbook/internal/client"
	"fitbook/internal/parser"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add n/NAME p/PHONE e/EMAIL a/ADDRESS w/WEIGHT g/GENDER cal/CALORIE [app/APPOINTMENT]... [t/TAG]...",
	Short: "Add a client",
	Example: `  fitbook add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 w/70 g/M cal/2200
  fitbook add n/Jane Doe p/91234567 e/jane@example.com a/Blk 45 w/55 g/F cal/1800 app/12-12-2026 t/yoga`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.AddWord + " " + joinArgs(args))
	},
}

var editCmd = &cobra.Command{
	Use:     "edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [w/WEIGHT] [g/GENDER] [cal/CALORIE] [app/APPOINTMENT]... [t/TAG]...",
	Short:   "Edit the client at the given display index",
	Example: "  fitbook edit 1 p/91234567 w/68",
	Args:    cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.EditWord + " " + joinArgs(args))
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete INDEX",
	Short:   "Delete the client at the given display index",
	Example: "  fitbook delete 1",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.DeleteWord + " " + joinArgs(args))
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = " Loading FitBook data..."
		s.Start()
		mgr := runTextWithSpinner(parser.ListWord, s)
		printClients(mgr.FilteredClients())
	},
}

var findCmd = &cobra.Command{
	Use:     "find KEYWORD [MORE_KEYWORDS]...",
	Short:   "Find clients whose names contain any of the keywords",
	Example: "  fitbook find alex david",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = " Searching clients..."
		s.Start()
		mgr := runTextWithSpinner(parser.FindWord+" "+joinArgs(args), s)
		printClients(mgr.FilteredClients())
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all clients",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.ClearWord)
	},
}

func printClients(clients []client.Client) {
	if len(clients) == 0 {
		fmt.Println("No clients to show.")
		return
	}
	for i, c := range clients {
		fmt.Printf("%s %s\n", indexColor.Sprintf("%3d.", i+1), c.Name)
		fieldColor.Printf("     Phone: %s  Email: %s\n", c.Phone, c.Email)
		fieldColor.Printf("     Address: %s\n", c.Address)
		fieldColor.Printf("     Weight: %s kg  Gender: %s  Calories: %s kcal\n", c.Weight, c.Gender, c.Calorie)
		if len(c.Appointments) > 0 {
			var parts []string
			for _, a := range c.Appointments {
				parts = append(parts, a.String())
			}
			fieldColor.Printf("     Appointments: %s\n", strings.Join(parts, ", "))
		}
		if len(c.Tags) > 0 {
			var parts []string
			for _, t := range c.Tags {
				parts = append(parts, "["+t.String()+"]")
			}
			tagColor.Printf("     Tags: %s\n", strings.Join(parts, " "))
		}
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(clearCmd)
}
