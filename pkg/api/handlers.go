// MiSTer Launcher
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of MiSTer Launcher.
//
// MiSTer Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MiSTer Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MiSTer Launcher.  If not, see <http://www.gnu.org/licenses/>.

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ZaparooProject/mister-launcher/pkg/api/validation"
	"github.com/ZaparooProject/mister-launcher/pkg/games"
	"github.com/ZaparooProject/mister-launcher/pkg/launcher"
	"github.com/ZaparooProject/mister-launcher/pkg/menu"
	"github.com/rs/zerolog/log"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type MenuRequest struct {
	Games []menu.Selection `json:"games" validate:"required,dive"`
}

type MenuItem struct {
	Caption     string `json:"caption"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Index       int    `json:"index"`
	Found       bool   `json:"found"`
}

type MenuResponse struct {
	Items []MenuItem `json:"items"`
}

type LaunchRequest struct {
	menu.Selection
	Index int `json:"index" validate:"gte=0"`
}

type LaunchResponse struct {
	Notices []string `json:"notices"`
}

type ErrorResponse struct {
	Validation *validation.Error `json:"validation,omitempty"`
	Error      string            `json:"error"`
	Notices    []string          `json:"notices,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}

func writeParamsError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var ve *validation.Error
	if errors.As(err, &ve) {
		resp.Validation = ve
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

func handleHealth(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Version: env.Version,
		})
	}
}

func handleMenu(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MenuRequest
		if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
			writeParamsError(w, err)
			return
		}

		resp := MenuResponse{Items: []MenuItem{}}
		// menus are only offered for a single selected game
		if len(req.Games) != 1 {
			writeJSON(w, http.StatusOK, resp)
			return
		}

		candidates, err := env.Menu.Candidates(r.Context(), req.Games[0])
		if err != nil {
			log.Error().Err(err).Msg("error building menu")
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		for i := range candidates {
			c := &candidates[i]
			resp.Items = append(resp.Items, MenuItem{
				Index:       i,
				Caption:     games.Caption(*c),
				Description: c.Description,
				Path:        c.PathOrEmpty(),
				Found:       c.Launchable(),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleLaunch(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LaunchRequest
		if err := validation.DecodeAndValidate(r.Body, &req); err != nil {
			writeParamsError(w, err)
			return
		}

		candidates, err := env.Menu.Candidates(r.Context(), req.Selection)
		if err != nil {
			log.Error().Err(err).Msg("error looking up launch candidates")
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		if req.Index >= len(candidates) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "index out of range"})
			return
		}

		notices := make([]string, 0, 1)
		notify := launcher.NotifierFunc(func(msg string) {
			notices = append(notices, msg)
		})

		if err := env.Launcher.LaunchNotify(r.Context(), candidates[req.Index], notify); err != nil {
			writeJSON(w, http.StatusBadGateway, ErrorResponse{
				Error:   err.Error(),
				Notices: notices,
			})
			return
		}

		writeJSON(w, http.StatusOK, LaunchResponse{Notices: notices})
	}
}
