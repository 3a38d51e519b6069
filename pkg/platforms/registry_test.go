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

package platforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entry    string
		expected Mapping
		computer bool
	}{
		{
			name:     "plain name",
			entry:    "NES",
			expected: Mapping{FrontendKey: "nes", SystemID: "NES"},
		},
		{
			name:     "mapped name",
			entry:    "Nintendo Entertainment System:NES",
			expected: Mapping{FrontendKey: "nintendo entertainment system", SystemID: "NES"},
		},
		{
			name:     "whitespace trimmed",
			entry:    "  Sega Genesis :  Genesis ",
			expected: Mapping{FrontendKey: "sega genesis", SystemID: "Genesis"},
		},
		{
			name:     "empty system id",
			entry:    "Foo:",
			expected: Mapping{FrontendKey: "foo"},
		},
		{
			name:     "extra colon segments ignored",
			entry:    "Commodore 64:C64:extra",
			computer: true,
			expected: Mapping{FrontendKey: "commodore 64", SystemID: "C64", Computer: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseEntry(tt.entry, tt.computer))
		})
	}
}

func TestNewRegistry_Resolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry(
		[]string{"Nintendo Entertainment System:NES", "SNES"},
		[]string{"Commodore 64:C64"},
	)

	systemID, ok := r.Resolve("nintendo entertainment system")
	assert.True(t, ok)
	assert.Equal(t, "NES", systemID)

	systemID, ok = r.Resolve("snes")
	assert.True(t, ok)
	assert.Equal(t, "SNES", systemID)

	systemID, ok = r.Resolve("commodore 64")
	assert.True(t, ok)
	assert.Equal(t, "C64", systemID)

	_, ok = r.Resolve("Nintendo Entertainment System")
	assert.False(t, ok, "lookups expect a lower-cased key")

	_, ok = r.Resolve("sony playstation")
	assert.False(t, ok)

	assert.Equal(t, 3, r.Len())
}

func TestRegistry_IsComputer(t *testing.T) {
	t.Parallel()

	r := NewRegistry([]string{"NES"}, []string{"Commodore 64:C64", "Amiga"})

	assert.True(t, r.IsComputer("C64"))
	assert.True(t, r.IsComputer("Amiga"))
	assert.False(t, r.IsComputer("NES"))
	assert.False(t, r.IsComputer("c64"), "system ids are case-sensitive")
}

func TestRegistry_IgnoresEmptyEntries(t *testing.T) {
	t.Parallel()

	r := NewRegistry([]string{"", " : ", "NES"}, nil)

	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SkipsEntriesWithoutSystemID(t *testing.T) {
	t.Parallel()

	r := NewRegistry([]string{"Foo:", ":NES", "SNES"}, []string{"Amiga: "})

	_, ok := r.Resolve("foo")
	assert.False(t, ok)
	_, ok = r.Resolve("")
	assert.False(t, ok)
	_, ok = r.Resolve("amiga")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_LaterEntryWins(t *testing.T) {
	t.Parallel()

	r := NewRegistry([]string{"Sega Genesis:Genesis"}, []string{"sega genesis:MegaCD"})

	systemID, ok := r.Resolve("sega genesis")
	assert.True(t, ok)
	assert.Equal(t, "MegaCD", systemID)
}

func TestLookupSystem(t *testing.T) {
	t.Parallel()

	s, ok := LookupSystem("C64")
	assert.True(t, ok)
	assert.Equal(t, CategoryComputer, s.Category)

	_, ok = LookupSystem("c64")
	assert.False(t, ok)

	s, ok = LookupSystemFold("c64")
	assert.True(t, ok)
	assert.Equal(t, "C64", s.ID)
}
