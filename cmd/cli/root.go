// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strings"

	"fitbook/internal/config"
	"fitbook/internal/logger"
	"fitbook/internal/logic"
	"fitbook/internal/storage"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	indexColor   = color.New(color.FgBlue)
	fieldColor   = color.New(color.Faint)
	tagColor     = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:   "fitbook",
	Short: "FitBook CLI",
	Long: `A client-management tool for personal trainers.

Tracks clients (contact details, weight, gender, calorie targets,
appointments, tags) and exercise routines. Data is kept as flat JSON files
in the data directory (~/.local/share/fitbook by default, configurable via
~/.config/fitbook/config.yaml). Run without arguments for the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger(false)
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if err := logger.SetLevelFromString(cfg.LogLevel); err != nil {
			logger.Warnf("Ignoring configured log level: %v", err)
		}
		return nil
	},
}

func RunCLI() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newManager loads the data files (applying the startup fallback policy)
// and returns a ready logic manager.
func newManager() (*logic.Manager, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	dataDir, err := config.EffectiveDataDir(cfg)
	if err != nil {
		return nil, err
	}
	store := storage.New(dataDir)
	return logic.NewManager(store.LoadBook(), store), nil
}

// runText executes one line of command text against a freshly loaded book
// and prints the feedback. It exits the process on failure, like every
// other CLI command path.
func runText(text string) *logic.Manager {
	mgr, err := newManager()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	res, err := mgr.Execute(text)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	successColor.Println(res.Feedback)
	return mgr
}

// runTextWithSpinner is runText for commands that show a spinner while the
// data files load; the spinner is stopped before anything is printed so
// partial frames don't litter the terminal.
func runTextWithSpinner(text string, s *spinner.Spinner) *logic.Manager {
	mgr, err := newManager()
	if err != nil {
		s.Stop()
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	res, err := mgr.Execute(text)
	s.Stop()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	successColor.Println(res.Feedback)
	return mgr
}

// joinArgs rebuilds the command argument string from cobra's split args.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func init() {
	rootCmd.AddCommand(execCmd)
}

var execCmd = &cobra.Command{
	Use:   "exec <command-text>",
	Short: "Run a raw FitBook command line",
	Long: `Runs one command exactly as it would be typed into the TUI command box.
Useful for scripting and for commands not covered by a dedicated subcommand.`,
	Example: `  fitbook exec "add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 w/70 g/M cal/2200"
  fitbook exec "deleteRoutine 2"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runText(args[0])
	},
}
