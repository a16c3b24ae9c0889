// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fitbook/internal/logic"
	"fitbook/internal/model"
	"fitbook/internal/parser"

	"github.com/gorilla/mux"
)

// CommandRequest is the expected JSON body for the command endpoint.
type CommandRequest struct {
	Command string `json:"command"` // Raw command text, e.g. "delete 2"
}

// CommandResponse carries the feedback of an executed command.
type CommandResponse struct {
	Feedback string `json:"feedback"`
}

// RegisterCommandRoutes registers the command-execution endpoint. The body's
// command text runs through the same pipeline as the interactive front ends,
// so duplicate and index rules apply identically.
func RegisterCommandRoutes(router *mux.Router, mgr *logic.Manager) {
	router.HandleFunc("/api/command", func(w http.ResponseWriter, r *http.Request) {
		var req CommandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		res, err := mgr.Execute(req.Command)
		if err != nil {
			writeJSONError(w, commandErrorStatus(err), err.Error())
			return
		}
		writeJSONResponse(w, CommandResponse{Feedback: res.Feedback})
	}).Methods("POST")
}

// commandErrorStatus maps pipeline failures onto HTTP statuses: parse
// failures and bad indices are the caller's fault, duplicates are conflicts,
// anything else (e.g. a failed save) is a server error.
func commandErrorStatus(err error) int {
	var parseErr *parser.Error
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrClientIndexRange), errors.Is(err, model.ErrRoutineIndexRange):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDuplicateClient), errors.Is(err, model.ErrDuplicateRoutine):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
