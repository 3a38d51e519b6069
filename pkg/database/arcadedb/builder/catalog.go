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

package builder

import (
	"strings"

	"github.com/ZaparooProject/mister-launcher/pkg/database/arcadedb"
	"github.com/rs/zerolog/log"
)

var nameReplacer = strings.NewReplacer(
	"q'bert", "q*bert",
	"puck man", "pac-man",
	"puckman", "pac-man",
)

// normalizeName makes titles from MAME metadata and MRA file names
// comparable, so regional variants of a game share one name.
func normalizeName(name string) string {
	return nameReplacer.Replace(strings.ToLower(name))
}

// cleanText undoes the entity handling the metadata files get wrong. Double
// quotes can't appear in MRA file names, so they're matched as single ones.
func cleanText(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), `"`, "'")
}

type game struct {
	SetName     string
	Description string
	Name        string
	Version     string
	Path        string
	Year        int
}

// catalog collects sets in the order they're first seen.
type catalog struct {
	bySet  map[string]int
	list   []arcadedb.Row
	found  map[string]string
	titles map[string]struct{}
	stats  Stats
}

func newCatalog() *catalog {
	return &catalog{
		bySet:  make(map[string]int),
		found:  make(map[string]string),
		titles: make(map[string]struct{}),
	}
}

// addMetadata records a set from the MAME metadata, without a path.
//
//nolint:gocritic // game passed by value
func (c *catalog) addMetadata(g game) {
	if g.SetName == "" {
		return
	}
	if g.Description == "" {
		g.Description = strings.TrimSpace(g.Name + " " + g.Version)
	} else if g.Name == "" {
		name, rest, found := strings.Cut(g.Description, "(")
		g.Name = strings.TrimSpace(name)
		if found {
			g.Version = strings.TrimSpace("(" + rest)
		}
	}

	if _, ok := c.bySet[g.SetName]; ok {
		log.Debug().Msgf("duplicate set in mame metadata: %s", g.SetName)
		return
	}

	c.bySet[g.SetName] = len(c.list)
	c.list = append(c.list, arcadedb.Row{
		SetName:     g.SetName,
		Description: g.Description,
		Name:        normalizeName(g.Name),
		Version:     g.Version,
		Year:        g.Year,
	})
	c.stats.MameGames++
}

// addFound records an MRA file for a set. Only the first file found for a
// set is kept, and it becomes the catalog default if no other set with the
// same title was found before it.
//
//nolint:gocritic // game passed by value
func (c *catalog) addFound(g game) {
	if existing, ok := c.found[g.SetName]; ok {
		log.Debug().Msgf("skipping %s, found: %s", g.Path, existing)
		c.stats.Skipped++
		return
	}

	name := normalizeName(g.Name)
	if i, ok := c.bySet[g.SetName]; ok {
		row := &c.list[i]
		name = row.Name
		row.Path = g.Path
		row.IsDefault = c.markTitle(name)
	} else {
		c.bySet[g.SetName] = len(c.list)
		c.list = append(c.list, arcadedb.Row{
			SetName:     g.SetName,
			Description: g.Description,
			Name:        name,
			Version:     g.Version,
			Year:        g.Year,
			Path:        g.Path,
			IsDefault:   c.markTitle(name),
		})
	}

	log.Debug().Msgf("found %s: %s", g.SetName, g.Path)
	c.found[g.SetName] = g.Description
	c.stats.Games++
}

// markTitle reports whether name is being seen for the first time, and
// remembers it.
func (c *catalog) markTitle(name string) bool {
	if _, ok := c.titles[name]; ok {
		return false
	}
	c.titles[name] = struct{}{}
	return true
}

func (c *catalog) rows() []arcadedb.Row {
	return c.list
}
