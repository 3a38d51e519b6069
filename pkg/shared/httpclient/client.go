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

// Package httpclient builds the HTTP client used to talk to the MiSTer,
// adding configured credentials to matching requests.
package httpclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net"
	"net/http"
	"time"

	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/rs/zerolog/log"
)

// AuthTransport adds an Authorization header to requests matching an entry
// of the [auth] config section.
type AuthTransport struct {
	Base  http.RoundTripper
	Creds map[string]config.CredentialEntry
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	creds := config.LookupAuth(t.Creds, req.URL.String())
	if creds != nil {
		// RoundTrip must not modify the caller's request
		req = req.Clone(req.Context())
		if creds.Bearer != "" {
			req.Header.Set("Authorization", "Bearer "+creds.Bearer)
		} else if creds.Username != "" {
			auth := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
			req.Header.Set("Authorization", "Basic "+auth)
		}
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform HTTP round trip: %w", err)
	}
	return resp, nil
}

// DefaultTransport keeps connections to the MiSTer alive between the menu
// search and the launch that follows it.
var DefaultTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: 30 * time.Second,
	MaxIdleConns:          10,
	MaxIdleConnsPerHost:   2,
	IdleConnTimeout:       90 * time.Second,
}

// Client is an HTTP client with authentication support.
type Client struct {
	*http.Client
}

// NewClient creates a client with the given credentials and timeout. A zero
// timeout means requests are only bounded by their context.
func NewClient(creds map[string]config.CredentialEntry, timeout time.Duration) *Client {
	return &Client{
		Client: &http.Client{
			Transport: &AuthTransport{
				Base:  DefaultTransport,
				Creds: maps.Clone(creds),
			},
			Timeout: timeout,
		},
	}
}

// NewClientFromConfig creates a client for the configured MiSTer API.
func NewClientFromConfig(cfg *config.Instance) *Client {
	return NewClient(cfg.Auth(), cfg.APITimeout())
}

// PostJSON sends body encoded as JSON, or an empty body when it's nil. The
// caller must close the response body.
func (c *Client) PostJSON(ctx context.Context, url string, body any) (*http.Response, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().Msgf("POST %s", url)
	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error posting to %s: %w", url, err)
	}
	return resp, nil
}
