// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"net/http"

	"fitbook/internal/logic"
	"fitbook/internal/routine"

	"github.com/gorilla/mux"
)

// RoutineResponse is the JSON shape a routine is served as.
type RoutineResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

func toRoutineResponse(r routine.Routine) RoutineResponse {
	resp := RoutineResponse{
		ID:        r.ID.String(),
		Name:      r.Name.String(),
		Exercises: []string{},
	}
	for _, e := range r.Exercises {
		resp.Exercises = append(resp.Exercises, e.String())
	}
	return resp
}

// RegisterRoutineRoutes registers the read-only routine endpoints.
func RegisterRoutineRoutes(router *mux.Router, mgr *logic.Manager) {
	router.HandleFunc("/api/routines", func(w http.ResponseWriter, r *http.Request) {
		routines := mgr.Routines()
		out := make([]RoutineResponse, 0, len(routines))
		for _, rt := range routines {
			out = append(out, toRoutineResponse(rt))
		}
		writeJSONResponse(w, out)
	}).Methods("GET")

	router.HandleFunc("/api/routines/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		for _, rt := range mgr.Routines() {
			if rt.ID.String() == id {
				writeJSONResponse(w, toRoutineResponse(rt))
				return
			}
		}
		writeJSONError(w, http.StatusNotFound, "routine not found")
	}).Methods("GET")
}
