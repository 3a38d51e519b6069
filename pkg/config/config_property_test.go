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

package config

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyLookupAuthEmptyAlwaysNil verifies empty auth returns nil.
func TestPropertyLookupAuthEmptyAlwaysNil(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		url := rapid.StringMatching(`https?://[a-z]+\.[a-z]+(/[a-z]*)?`).Draw(t, "url")

		result := LookupAuth(nil, url)
		if result != nil {
			t.Fatalf("Empty auth should return nil, got %v for URL %q", result, url)
		}
	})
}

// TestPropertyLookupAuthCaseInsensitiveHost verifies host matching is case-insensitive.
func TestPropertyLookupAuthCaseInsensitiveHost(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		host := rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "host")

		configURL := "http://" + strings.ToLower(host) + ":8182"
		requestURL := "http://" + strings.ToUpper(host) + ":8182/api/games/search"

		creds := map[string]CredentialEntry{
			configURL: {Username: "user", Password: "pass"},
		}

		if LookupAuth(creds, requestURL) == nil {
			t.Fatalf("Case-insensitive host match failed: config=%q, request=%q",
				configURL, requestURL)
		}
	})
}

// TestPropertyLookupAuthSchemeMismatchReturnsNil verifies scheme must match
// for full URL entries.
func TestPropertyLookupAuthSchemeMismatchReturnsNil(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		host := rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "host")

		creds := map[string]CredentialEntry{
			"https://" + host + ".com": {Bearer: "token"},
		}

		if LookupAuth(creds, "http://"+host+".com") != nil {
			t.Fatalf("Scheme mismatch should return nil for host %q", host)
		}
	})
}

// TestPropertyLookupAuthSchemelessMatchesAnyScheme verifies "host:port"
// entries apply to both schemes.
func TestPropertyLookupAuthSchemelessMatchesAnyScheme(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		host := rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "host")
		scheme := rapid.SampledFrom([]string{"http", "https"}).Draw(t, "scheme")

		creds := map[string]CredentialEntry{
			host + ":8182": {Username: "mister"},
		}

		result := LookupAuth(creds, scheme+"://"+host+":8182/api/games/launch")
		if result == nil || result.Username != "mister" {
			t.Fatalf("Schemeless entry did not match %s://%s:8182", scheme, host)
		}
	})
}
