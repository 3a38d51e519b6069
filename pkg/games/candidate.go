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

// Package games holds the launch candidate model shared by the arcade and
// remote catalog lookups, plus the name parsing and ordering rules used to
// present them.
package games

import (
	"cmp"
	"slices"
	"strings"
)

// Candidate is a single MiSTer catalog entry offered for launch.
type Candidate struct {
	// Path is nil when the entry isn't present on the MiSTer. These are
	// still listed so the user can see the miss, but are never launched.
	Path *string
	// SetName is the arcade setname, or the MiSTer system ID for entries
	// found through the remote search.
	SetName     string
	Name        string
	Version     string
	Description string
	// IsDefault marks the catalog's canonical entry for a set.
	IsDefault bool
	// FrontendMatch is true when Description is the same file the frontend
	// has selected. It's set once after construction, before ranking.
	FrontendMatch bool
}

// Launchable reports whether the candidate has a path on the MiSTer.
func (c *Candidate) Launchable() bool {
	return c.Path != nil && *c.Path != ""
}

// PathOrEmpty returns the MiSTer path or an empty string when not found.
func (c *Candidate) PathOrEmpty() string {
	if c.Path == nil {
		return ""
	}
	return *c.Path
}

// MatchesFile reports whether the candidate's description is the given
// frontend file name, ignoring case.
func (c *Candidate) MatchesFile(fileName string) bool {
	return strings.EqualFold(c.Description, fileName)
}

// Compare orders candidates for display: frontend matches first, then
// catalog defaults, then by version tag using ordinal string comparison.
//
//nolint:gocritic // candidates are small and compared by value in sort funcs
func Compare(a, b Candidate) int {
	if a.FrontendMatch != b.FrontendMatch {
		if a.FrontendMatch {
			return -1
		}
		return 1
	}
	if a.IsDefault != b.IsDefault {
		if a.IsDefault {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.Version, b.Version)
}

// Rank sorts candidates in place using Compare and returns the same slice.
// The sort is stable, so ranking an already ranked list is a no-op.
func Rank(candidates []Candidate) []Candidate {
	slices.SortStableFunc(candidates, Compare)
	return candidates
}
