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
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// mraHeader is what's read from an MRA before its first rom entry.
type mraHeader struct {
	SetName  string
	Year     int
	Homebrew bool
	Bootleg  bool
}

func readMRAHeader(fs afero.Fs, path string) (mraHeader, error) {
	var h mraHeader

	f, err := fs.Open(path)
	if err != nil {
		return h, fmt.Errorf("failed to open mra: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close mra")
		}
	}()

	dec := newXMLDecoder(f)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return h, nil
		} else if err != nil {
			return h, fmt.Errorf("failed to parse mra: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var value string
		switch se.Name.Local {
		case "rom":
			return h, nil
		case "setname", "year", "homebrew", "bootleg":
			if err := dec.DecodeElement(&value, &se); err != nil {
				return h, fmt.Errorf("failed to parse mra: %w", err)
			}
		default:
			continue
		}

		value = cleanText(value)
		switch se.Name.Local {
		case "setname":
			h.SetName = value
		case "year":
			h.Year = parseYear(value)
		case "homebrew":
			h.Homebrew = strings.EqualFold(value, "yes")
		case "bootleg":
			h.Bootleg = strings.EqualFold(value, "yes")
		}
	}
}

// splitMRAName takes the title and version from an MRA file name. The
// version is only split off when the title before it isn't empty.
func splitMRAName(fileName string) (desc, name, version string) {
	desc = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	i := strings.IndexByte(desc, '(')
	if i <= 0 {
		return desc, desc, ""
	}
	return desc, strings.TrimSpace(desc[:i]), strings.TrimSpace(desc[i:])
}

type scanner struct {
	fs            afero.Fs
	catalog       *catalog
	shareRoot     string
	appliancePath string
	bootlegs      []game
	homebrews     []game
}

// scanArcade processes the top level of _Arcade, then each folder tree in
// order. Bootlegs and homebrews are held back until the regular sets of
// their directory are done, so they never become a title's default over an
// official release.
func (s *scanner) scanArcade(ctx context.Context, folders []string) error {
	arcadePath := filepath.Join(s.shareRoot, ArcadeDir)

	entries, err := afero.ReadDir(s.fs, arcadePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", arcadePath, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			s.processFile(filepath.Join(arcadePath, e.Name()), e.Name())
		}
	}
	s.flushDeferred()

	for _, folder := range folders {
		dir := filepath.Join(arcadePath, filepath.FromSlash(folder))
		if err := s.scanTree(ctx, dir); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) scanTree(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mra scan cancelled: %w", err)
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Msgf("skipping missing folder: %s", dir)
		return nil
	} else if err != nil {
		log.Warn().Err(err).Msgf("failed to read folder: %s", dir)
		return nil
	}

	log.Debug().Msgf("scanning path: %s", dir)

	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
			continue
		}
		s.processFile(filepath.Join(dir, e.Name()), e.Name())
	}
	s.flushDeferred()

	for _, name := range subdirs {
		if err := s.scanTree(ctx, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) processFile(fullPath, fileName string) {
	if !strings.HasSuffix(fileName, ".mra") {
		return
	}

	h, err := readMRAHeader(s.fs, fullPath)
	if err != nil {
		log.Warn().Err(err).Msgf("error processing: %s", fullPath)
		s.catalog.stats.Errors++
		return
	}
	if h.SetName == "" {
		return
	}
	s.catalog.stats.MRAFiles++

	desc, name, version := splitMRAName(fileName)
	g := game{
		SetName:     h.SetName,
		Description: desc,
		Name:        name,
		Version:     version,
		Year:        h.Year,
		Path:        storedPath(s.shareRoot, s.appliancePath, fullPath),
	}

	switch {
	case h.Bootleg:
		s.bootlegs = append(s.bootlegs, g)
	case h.Homebrew:
		s.homebrews = append(s.homebrews, g)
	default:
		s.catalog.addFound(g)
	}
}

func (s *scanner) flushDeferred() {
	for _, g := range s.bootlegs {
		s.catalog.addFound(g)
	}
	s.bootlegs = nil
	for _, g := range s.homebrews {
		s.catalog.addFound(g)
	}
	s.homebrews = nil
}
