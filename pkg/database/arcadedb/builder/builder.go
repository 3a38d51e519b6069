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

// Package builder creates the arcade database from MAME metadata and the
// MRA files found on a MiSTer SD card share.
package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/mister-launcher/pkg/database/arcadedb"
	"github.com/ZaparooProject/mister-launcher/pkg/helpers"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ArcadeDir is the MiSTer folder holding the main set of MRA files. Sets
// found directly in it take precedence over every other folder.
const ArcadeDir = "_Arcade"

// DefaultFolders are the sub-folders of _Arcade scanned after its top level.
// Almost everything under _Organized is a duplicate by then.
var DefaultFolders = []string{
	"_alternatives",
	"_Organized/_1 0-9",
	"_Organized/_1 A-E",
	"_Organized/_1 F-K",
	"_Organized/_1 L-Q",
	"_Organized/_1 R-T",
	"_Organized/_1 U-Z",
	"_Organized/_2 Region/_USA",
	"_Organized/_2 Region/_Japan",
	"_Organized/_2 Region/_World",
	"_Organized/_2 Region/_Europe",
}

var ErrBuildInProgress = errors.New("arcade database build already in progress")

type Options struct {
	// Fs is used to read the metadata file and the share. Defaults to the
	// OS filesystem.
	Fs afero.Fs
	// MameXML is a LaunchBox MAME.xml or the output of mame -listxml.
	MameXML string
	// ShareRoot is the directory containing _Arcade, usually the MiSTer SD
	// card mounted over the network.
	ShareRoot string
	// AppliancePath replaces ShareRoot in stored paths, e.g. /media/fat.
	// When empty, paths are stored relative to the share.
	AppliancePath string
	// Folders under _Arcade to scan recursively, with / separators.
	Folders []string
	// Output is the database file. It's always written to the OS
	// filesystem.
	Output string
}

type Stats struct {
	MameGames int
	MRAFiles  int
	Games     int
	Skipped   int
	Errors    int
}

// Build writes a fresh arcade database. The previous database, if any, is
// only replaced once the new one is complete.
//
//nolint:gocritic // options struct passed by value
func Build(ctx context.Context, opts Options) (Stats, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Folders == nil {
		opts.Folders = DefaultFolders
	}
	if opts.Output == "" {
		return Stats{}, errors.New("output path is required")
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, fmt.Errorf("build cancelled: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0o750); err != nil {
		return Stats{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	lock := flock.New(opts.Output + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return Stats{}, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return Stats{}, ErrBuildInProgress
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn().Err(err).Msg("failed to release build lock")
		}
	}()

	b := newCatalog()

	log.Info().Msgf("reading mame metadata: %s", opts.MameXML)
	if err := readMameXML(ctx, opts.Fs, opts.MameXML, b); err != nil {
		return b.stats, err
	}
	log.Info().Msgf("found %d mame games", b.stats.MameGames)

	s := &scanner{
		fs:            opts.Fs,
		shareRoot:     opts.ShareRoot,
		appliancePath: opts.AppliancePath,
		catalog:       b,
	}
	if err := s.scanArcade(ctx, opts.Folders); err != nil {
		return b.stats, err
	}
	log.Info().Msgf(
		"processed %d mra files and %d games, skipped %d duplicates, %d errors",
		b.stats.MRAFiles, b.stats.Games, b.stats.Skipped, b.stats.Errors,
	)

	if err := replaceDatabase(ctx, opts.Output, b.rows()); err != nil {
		return b.stats, err
	}

	return b.stats, nil
}

func replaceDatabase(ctx context.Context, output string, rows []arcadedb.Row) error {
	tmp := output + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stale database: %w", err)
	}

	if err := arcadedb.Create(ctx, tmp, rows); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			log.Warn().Err(rmErr).Msg("failed to remove partial database")
		}
		return err
	}

	if err := os.Rename(tmp, output); err != nil {
		return fmt.Errorf("failed to replace arcade database: %w", err)
	}
	log.Info().Msgf("wrote %d sets to %s", len(rows), output)
	return nil
}

// storedPath turns a file on the share into the path the MiSTer uses.
func storedPath(shareRoot, appliancePath, fullPath string) string {
	rel, err := filepath.Rel(shareRoot, fullPath)
	if err != nil {
		rel = fullPath
	}
	rel = strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
	if appliancePath == "" {
		return rel
	}
	return helpers.JoinArcadePath(appliancePath, rel)
}
