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

// Package menu turns a frontend game selection into the list of MiSTer
// entries offered for launch.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZaparooProject/mister-launcher/pkg/games"
	"github.com/ZaparooProject/mister-launcher/pkg/helpers"
	"github.com/ZaparooProject/mister-launcher/pkg/lookup"
	"github.com/ZaparooProject/mister-launcher/pkg/platforms"
	"github.com/rs/zerolog/log"
)

// Selection is a game selected in the frontend.
type Selection struct {
	Platform        string `json:"platform" validate:"required"`
	ApplicationPath string `json:"applicationPath" validate:"required"`
}

// Item is a single "Play ... on MiSTer" entry.
type Item struct {
	Caption   string
	Candidate games.Candidate
	Index     int
}

type ArcadeFinder interface {
	FindArcadeGames(ctx context.Context, setName string) ([]games.Candidate, error)
}

type ConsoleFinder interface {
	FindConsoleGames(ctx context.Context, systemID, fileName string) lookup.SearchOutcome
}

// Builder routes arcade selections to the local database and everything
// else to a search on the MiSTer.
type Builder struct {
	arcade   ArcadeFinder
	console  ConsoleFinder
	registry *platforms.Registry
}

func NewBuilder(arcade ArcadeFinder, console ConsoleFinder, registry *platforms.Registry) *Builder {
	return &Builder{
		arcade:   arcade,
		console:  console,
		registry: registry,
	}
}

// Candidates returns the ranked candidates for a selection. Only arcade
// database errors are returned, a failed remote search just gives no
// candidates.
func (b *Builder) Candidates(ctx context.Context, sel Selection) ([]games.Candidate, error) {
	platform := strings.ToLower(strings.TrimSpace(sel.Platform))
	fileName := helpers.GetPathName(sel.ApplicationPath)

	if platform == platforms.PlatformArcade {
		found, err := b.arcade.FindArcadeGames(ctx, fileName)
		if err != nil {
			return nil, fmt.Errorf("arcade lookup for %s failed: %w", fileName, err)
		}
		return games.Rank(found), nil
	}

	systemID, ok := b.registry.Resolve(platform)
	if !ok {
		log.Debug().Msgf("platform not mapped to a MiSTer system: %s", sel.Platform)
		return []games.Candidate{}, nil
	}

	outcome := b.console.FindConsoleGames(ctx, systemID, fileName)
	if outcome.Failed() {
		log.Error().Err(outcome.Err).Msgf("error searching MiSTer for %s", fileName)
	}
	return games.Rank(outcome.Games), nil
}

// Items builds the menu for a frontend selection. Menus are only offered for
// a single selected game, so any other number of selections gives no items.
func (b *Builder) Items(ctx context.Context, selections ...Selection) ([]Item, error) {
	if len(selections) != 1 {
		return nil, nil
	}

	candidates, err := b.Candidates(ctx, selections[0])
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(candidates))
	for i := range candidates {
		items = append(items, Item{
			Index:     i,
			Caption:   games.Caption(candidates[i]),
			Candidate: candidates[i],
		})
	}
	return items, nil
}
