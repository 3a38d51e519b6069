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

import "strings"

// ParsedName is a raw game file name split into its title and the
// version/region tag group that follows it.
type ParsedName struct {
	Title   string
	Version string
}

// SplitName splits a raw name at the first "(" or "[", whichever comes
// first. The version keeps the opening bracket. Only the first tag group
// boundary matters; nested or repeated groups are left as-is in the version.
//
// Examples:
//   - "Sonic (USA)" → {"Sonic", "(USA)"}
//   - "Game [v2]" → {"Game", "[v2]"}
//   - "X [a](b)" → {"X", "[a](b)"}
//   - "(NoTitle)" → {"", "(NoTitle)"}
func SplitName(raw string) ParsedName {
	index := tagIndex(raw)
	if index < 0 {
		return ParsedName{Title: strings.TrimSpace(raw)}
	}
	return ParsedName{
		Title:   strings.TrimSpace(raw[:index]),
		Version: strings.TrimSpace(raw[index:]),
	}
}

func tagIndex(raw string) int {
	paren := strings.IndexByte(raw, '(')
	bracket := strings.IndexByte(raw, '[')
	switch {
	case paren < 0:
		return bracket
	case bracket < 0:
		return paren
	default:
		return min(paren, bracket)
	}
}
