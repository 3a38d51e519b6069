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

package games

const (
	prefixFrontendMatch = "*Play "
	prefixDefault       = "+Play "
	prefixPlay          = "Play "
	captionSuffix       = " Version on MiSTer..."
)

// Caption is the menu label for a candidate. "*" marks the file the frontend
// has selected and "+" marks the catalog default.
//
//nolint:gocritic // value receiver keeps callers simple
func Caption(c Candidate) string {
	prefix := prefixPlay
	switch {
	case c.FrontendMatch:
		prefix = prefixFrontendMatch
	case c.IsDefault:
		prefix = prefixDefault
	}

	label := c.Version
	if label == "" {
		label = c.Description
	}

	return prefix + label + captionSuffix
}
