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

// Package platforms maps frontend platform names to MiSTer system IDs.
package platforms

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// PlatformArcade is the frontend platform routed to the local arcade
// database instead of the remote search.
const PlatformArcade = "arcade"

// Mapping is a single frontend platform routed to a MiSTer system.
type Mapping struct {
	FrontendKey string
	SystemID    string
	Computer    bool
}

// Registry resolves lower-cased frontend platform names to MiSTer system
// IDs. It's populated once at startup and must not be modified after it's
// shared.
type Registry struct {
	systems   map[string]string
	computers map[string]struct{}
}

// NewRegistry builds a registry from the configured console and computer
// platform entries. Computers are registered last, so a platform listed in
// both ends up as a computer.
func NewRegistry(consoles, computers []string) *Registry {
	r := &Registry{
		systems:   make(map[string]string),
		computers: make(map[string]struct{}),
	}
	for _, entry := range consoles {
		r.Register(entry, false)
	}
	for _, entry := range computers {
		r.Register(entry, true)
	}
	return r
}

// ParseEntry parses a "frontend platform[:system id]" config entry. Without
// a colon, the system ID is the platform name itself.
func ParseEntry(entry string, computer bool) Mapping {
	frontend, systemID, found := strings.Cut(entry, ":")
	if !found {
		systemID = entry
	} else if i := strings.IndexByte(systemID, ':'); i >= 0 {
		systemID = systemID[:i]
	}
	return Mapping{
		FrontendKey: strings.ToLower(strings.TrimSpace(frontend)),
		SystemID:    strings.TrimSpace(systemID),
		Computer:    computer,
	}
}

// Register adds a platform entry. The MiSTer is case-sensitive about system
// IDs, so only the frontend key is lower-cased. Entries with an empty frontend
// key or system ID (e.g. "Foo:") are logged and skipped.
func (r *Registry) Register(entry string, computer bool) {
	m := ParseEntry(entry, computer)
	if m.FrontendKey == "" || m.SystemID == "" {
		log.Warn().Msgf("ignoring invalid platform mapping: %q", entry)
		return
	}

	if _, ok := LookupSystem(m.SystemID); !ok {
		if s, ok := LookupSystemFold(m.SystemID); ok {
			log.Warn().Msgf("platform %q maps to %s, did you mean %s?", m.FrontendKey, m.SystemID, s.ID)
		} else {
			log.Debug().Msgf("platform %q maps to unknown MiSTer system: %s", m.FrontendKey, m.SystemID)
		}
	}

	r.systems[m.FrontendKey] = m.SystemID
	if computer {
		r.computers[m.SystemID] = struct{}{}
	}
}

// Resolve returns the MiSTer system ID for a frontend platform. The key is
// expected lower-cased; false means the platform isn't routed to the MiSTer.
func (r *Registry) Resolve(frontendKey string) (string, bool) {
	systemID, ok := r.systems[frontendKey]
	return systemID, ok
}

// IsComputer reports whether a MiSTer system ID was registered from the
// computers list.
func (r *Registry) IsComputer(systemID string) bool {
	_, ok := r.computers[systemID]
	return ok
}

// Len returns the number of routed frontend platforms.
func (r *Registry) Len() int {
	return len(r.systems)
}
