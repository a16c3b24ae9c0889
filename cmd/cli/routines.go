// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"time"

	"fitbook/internal/parser"
	"fitbook/internal/routine"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// routineCmd is the parent command for all routine-related subcommands.
var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage exercise routines",
	Long: `Provides subcommands to manage exercise routines: named collections of
exercises maintained independently of any specific client.`,
}

var routineAddCmd = &cobra.Command{
	Use:     "add r/ROUTINE_NAME [ex/EXERCISE]...",
	Short:   "Add a routine",
	Example: "  fitbook routine add r/Cardio ex/Jumping jacks 3x20 ex/Burpees 3x10",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.AddRoutineWord + " " + joinArgs(args))
	},
}

var routineEditCmd = &cobra.Command{
	Use:     "edit INDEX [r/ROUTINE_NAME] [ex/EXERCISE]...",
	Short:   "Edit the routine at the given display index",
	Example: "  fitbook routine edit 1 r/Strength",
	Args:    cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.EditRoutineWord + " " + joinArgs(args))
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:     "delete INDEX",
	Short:   "Delete the routine at the given display index",
	Example: "  fitbook routine delete 1",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.DeleteRoutineWord + " " + joinArgs(args))
	},
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all routines",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = " Loading FitBook data..."
		s.Start()
		mgr := runTextWithSpinner(parser.ListRoutinesWord, s)
		printRoutines(mgr.FilteredRoutines())
	},
}

var routineFindCmd = &cobra.Command{
	Use:     "find KEYWORD [MORE_KEYWORDS]...",
	Short:   "Find routines whose names contain any of the keywords",
	Example: "  fitbook routine find cardio",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = " Searching routines..."
		s.Start()
		mgr := runTextWithSpinner(parser.FindRoutineWord+" "+joinArgs(args), s)
		printRoutines(mgr.FilteredRoutines())
	},
}

var routineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all routines",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runText(parser.ClearRoutinesWord)
	},
}

func printRoutines(routines []routine.Routine) {
	if len(routines) == 0 {
		fmt.Println("No routines to show.")
		return
	}
	for i, r := range routines {
		fmt.Printf("%s %s\n", indexColor.Sprintf("%3d.", i+1), r.Name)
		for _, e := range r.Exercises {
			fieldColor.Printf("     - %s\n", e)
		}
	}
}

func init() {
	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineEditCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineFindCmd)
	routineCmd.AddCommand(routineClearCmd)

	rootCmd.AddCommand(routineCmd)
}
