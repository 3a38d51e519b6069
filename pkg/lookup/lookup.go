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

// Package lookup finds console and computer games on the MiSTer by searching
// its catalog for the title of a frontend file.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZaparooProject/mister-launcher/pkg/games"
	"github.com/ZaparooProject/mister-launcher/pkg/helpers"
	"github.com/ZaparooProject/mister-launcher/pkg/platforms"
	"github.com/ZaparooProject/mister-launcher/pkg/remote"
)

// Searcher runs a catalog search on the MiSTer.
type Searcher interface {
	Search(ctx context.Context, query, systemID string) (remote.SearchResponse, error)
}

// SearchOutcome is the result of a remote lookup. A failed search has a
// non-nil Err and no games; callers decide whether that's worth more than a
// log line.
type SearchOutcome struct {
	Err   error
	Games []games.Candidate
}

func (o SearchOutcome) Failed() bool {
	return o.Err != nil
}

// Remote resolves frontend files to MiSTer catalog entries.
type Remote struct {
	searcher Searcher
	registry *platforms.Registry
}

func NewRemote(searcher Searcher, registry *platforms.Registry) *Remote {
	return &Remote{
		searcher: searcher,
		registry: registry,
	}
}

// FindConsoleGames searches systemID for entries with the same title as
// fileName, ignoring case. Files on computer systems get their extension
// added to the version tag, since the same title often exists as several
// disk and tape formats.
func (r *Remote) FindConsoleGames(ctx context.Context, systemID, fileName string) SearchOutcome {
	title := games.SplitName(fileName).Title

	resp, err := r.searcher.Search(ctx, title, systemID)
	if err != nil {
		return SearchOutcome{
			Games: []games.Candidate{},
			Err:   fmt.Errorf("search for %q on %s failed: %w", title, systemID, err),
		}
	}

	computer := r.registry.IsComputer(systemID)
	found := make([]games.Candidate, 0, len(resp.Data))
	for _, result := range resp.Data {
		if result.Name == "" {
			continue
		}

		parsed := games.SplitName(result.Name)
		if !strings.EqualFold(parsed.Title, title) {
			continue
		}

		version := parsed.Version
		if computer {
			version = withExtensionTag(version, result.Path)
		}

		path := result.Path
		c := games.Candidate{
			SetName:     result.System.ID,
			Name:        parsed.Title,
			Version:     version,
			Description: result.Name,
			Path:        &path,
		}
		c.FrontendMatch = c.MatchesFile(fileName)
		found = append(found, c)
	}

	return SearchOutcome{Games: found}
}

// withExtensionTag appends "[ext]" for a file path with an extension.
func withExtensionTag(version, path string) string {
	ext := helpers.GetPathExt(path)
	if len(ext) <= 1 {
		return version
	}
	return strings.TrimSpace(version + " [" + ext[1:] + "]")
}
