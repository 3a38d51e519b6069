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

// Package remote is a client for the MiSTer Remote API: game search, game
// launch and OSD control.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ZaparooProject/mister-launcher/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
)

const (
	searchPath = "/api/games/search"
	launchPath = "/api/games/launch"
	osdPath    = "/api/controls/keyboard/osd"

	// maxErrorBody limits how much of a failed response is kept for the
	// error message.
	maxErrorBody = 512
)

var ErrUnexpectedStatus = errors.New("unexpected status from MiSTer")

// StatusError is returned for non-2xx responses. It wraps
// ErrUnexpectedStatus.
type StatusError struct {
	Endpoint   string
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: %s returned %d", ErrUnexpectedStatus, e.Endpoint, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (*StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

type SearchRequest struct {
	Query  string `json:"query"`
	System string `json:"system"`
}

type System struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type SearchResult struct {
	System System `json:"system"`
	Name   string `json:"name"`
	Path   string `json:"path"`
}

type SearchResponse struct {
	Data     []SearchResult `json:"data"`
	Total    int            `json:"total,omitempty"`
	PageSize int            `json:"pageSize,omitempty"`
	Page     int            `json:"page,omitempty"`
}

type LaunchRequest struct {
	Path string `json:"path"`
}

// Client talks to a single MiSTer.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

// NewClient creates a client for the API at baseURL, e.g.
// http://mister:8182.
func NewClient(baseURL string, hc *httpclient.Client) *Client {
	return &Client{
		http:    hc,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	resp, err := c.http.PostJSON(ctx, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer closeBody(resp)
		data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			log.Debug().Err(readErr).Msg("failed to read error response")
		}
		return nil, &StatusError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	return resp, nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing response body")
	}
}

// Search runs a game search on a single system.
func (c *Client) Search(ctx context.Context, query, systemID string) (SearchResponse, error) {
	resp, err := c.post(ctx, searchPath, SearchRequest{
		Query:  query,
		System: systemID,
	})
	if err != nil {
		return SearchResponse{}, err
	}
	defer closeBody(resp)

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return SearchResponse{}, fmt.Errorf("failed to decode search response: %w", err)
	}

	log.Debug().Msgf("search %q on %s returned %d results", query, systemID, len(result.Data))
	return result, nil
}

// Launch starts a game from its path on the MiSTer.
func (c *Client) Launch(ctx context.Context, path string) error {
	resp, err := c.post(ctx, launchPath, LaunchRequest{Path: path})
	if err != nil {
		return err
	}
	closeBody(resp)
	return nil
}

// ToggleOSD presses the OSD key. Pressed while a core is running, it makes
// the core write its save files before the next game is loaded.
func (c *Client) ToggleOSD(ctx context.Context) error {
	resp, err := c.post(ctx, osdPath, nil)
	if err != nil {
		return err
	}
	closeBody(resp)
	return nil
}
