// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"log"
	"net/http"

	"fitbook/internal/api"
	"fitbook/internal/web"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the FitBook HTTP API server",
	Long: `Starts an HTTP server exposing the client and routine lists as JSON and a
command endpoint that runs the same commands as the TUI and CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAPIServer()
	},
}

// runAPIServer starts the HTTP server for the JSON API.
func runAPIServer() {
	mgr, err := newManager()
	if err != nil {
		errorColor.Printf("Error loading FitBook data: %v\n", err)
		return
	}

	router := mux.NewRouter()

	// Register API routes
	api.RegisterClientRoutes(router, mgr)
	api.RegisterRoutineRoutes(router, mgr)
	api.RegisterCommandRoutes(router, mgr)

	// Serve the embedded web UI for everything else
	staticFileServer := http.FileServer(web.GetFileSystem())
	router.PathPrefix("/").Handler(staticFileServer)

	statusColor.Printf("Starting FitBook API server on :%s\n", servePort)
	log.Fatal(http.ListenAndServe(":"+servePort, router))
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "port to listen on")
	rootCmd.AddCommand(serveCmd)
}
