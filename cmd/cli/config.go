// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strings"

	"fitbook/internal/config"
	"fitbook/internal/logger"

	"github.com/spf13/cobra"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fitbook configuration",
	Long: `Provides subcommands to manage aspects of the fitbook configuration.
This includes the data directory holding the JSON data files and the log level.`,
}

var configSetDataDirCmd = &cobra.Command{
	Use:   "set-data-dir <path>",
	Short: "Set the directory holding clients.json and routines.json",
	Long: `Sets the directory where fitbook keeps its data files.
Use an absolute path or a path starting with '~/' (e.g., '~/fitbook-data').
To revert to the default data directory, set the path to an empty string:
fitbook config set-data-dir ""`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dataDirPath := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		if dataDirPath != "" && !strings.HasPrefix(dataDirPath, "/") && !strings.HasPrefix(dataDirPath, "~/") {
			logger.Error("Error: Path must be absolute or start with '~/'")
			os.Exit(1)
		}

		cfg.DataDir = dataDirPath

		err = config.SaveConfig(cfg)
		if err != nil {
			logger.Errorf("Error saving configuration: %v", err)
			os.Exit(1)
		}

		if dataDirPath == "" {
			successColor.Println("Data directory reset to the default location.")
		} else {
			successColor.Printf("Data directory set to: %s\n", dataDirPath)
		}
	},
}

var configGetDataDirCmd = &cobra.Command{
	Use:   "get-data-dir",
	Short: "Show the currently configured data directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		if cfg.DataDir != "" {
			fmt.Printf("Configured data directory: %s\n", indexColor.Sprint(cfg.DataDir))
		} else {
			fmt.Println("Data directory not explicitly configured.")
		}

		effective, err := config.EffectiveDataDir(cfg)
		if err != nil {
			logger.Errorf("Error determining effective data directory: %v", err)
			os.Exit(1)
		}
		successColor.Printf("Effective data directory: %s\n", effective)
	},
}

var configSetLogLevelCmd = &cobra.Command{
	Use:   "set-log-level <level>",
	Short: "Set the log level (debug, info, warn or error)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level := strings.ToLower(args[0])

		if err := logger.SetLevelFromString(level); err != nil {
			logger.Errorf("Error: %v", err)
			os.Exit(1)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		cfg.LogLevel = level

		err = config.SaveConfig(cfg)
		if err != nil {
			logger.Errorf("Error saving configuration: %v", err)
			os.Exit(1)
		}

		successColor.Printf("Log level set to: %s\n", level)
	},
}

var configGetLogLevelCmd = &cobra.Command{
	Use:   "get-log-level",
	Short: "Show the currently configured log level",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		level := cfg.LogLevel
		fmt.Printf("Current log level: %s", indexColor.Sprint(levelOrDefault(level)))
		if level == "" {
			fmt.Print(" (default)")
		}
		fmt.Println()
	},
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}

func init() {
	configCmd.AddCommand(configSetDataDirCmd)
	configCmd.AddCommand(configGetDataDirCmd)
	configCmd.AddCommand(configSetLogLevelCmd)
	configCmd.AddCommand(configGetLogLevelCmd)

	rootCmd.AddCommand(configCmd)
}
