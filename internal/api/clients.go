// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api implements the HTTP endpoints served by `fitbook serve`.
// It exposes read access to the client and routine lists and a single
// command-execution endpoint that runs the same parse → execute → save
// pipeline as the TUI and CLI.
package api

import (
	"encoding/json"
	"net/http"

	"fitbook/internal/client"
	"fitbook/internal/logic"

	"github.com/gorilla/mux"
)

// ClientResponse is the JSON shape a client is served as.
type ClientResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Weight       string   `json:"weight"`
	Gender       string   `json:"gender"`
	Calorie      string   `json:"calorie"`
	Appointments []string `json:"appointments"`
	Tags         []string `json:"tags"`
}

func toClientResponse(c client.Client) ClientResponse {
	resp := ClientResponse{
		ID:           c.ID.String(),
		Name:         c.Name.String(),
		Phone:        c.Phone.String(),
		Email:        c.Email.String(),
		Address:      c.Address.String(),
		Weight:       c.Weight.String(),
		Gender:       c.Gender.String(),
		Calorie:      c.Calorie.String(),
		Appointments: []string{},
		Tags:         []string{},
	}
	for _, a := range c.Appointments {
		resp.Appointments = append(resp.Appointments, a.String())
	}
	for _, t := range c.Tags {
		resp.Tags = append(resp.Tags, t.String())
	}
	return resp
}

// writeJSONResponse writes a JSON response with CORS headers
func writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// RegisterClientRoutes registers the read-only client endpoints.
func RegisterClientRoutes(router *mux.Router, mgr *logic.Manager) {
	router.HandleFunc("/api/clients", func(w http.ResponseWriter, r *http.Request) {
		clients := mgr.Clients()
		out := make([]ClientResponse, 0, len(clients))
		for _, c := range clients {
			out = append(out, toClientResponse(c))
		}
		writeJSONResponse(w, out)
	}).Methods("GET")

	router.HandleFunc("/api/clients/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		for _, c := range mgr.Clients() {
			if c.ID.String() == id {
				writeJSONResponse(w, toClientResponse(c))
				return
			}
		}
		writeJSONError(w, http.StatusNotFound, "client not found")
	}).Methods("GET")
}
