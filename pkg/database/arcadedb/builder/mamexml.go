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
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// mameFile is a LaunchBox Metadata/MAME.xml record.
type mameFile struct {
	FileName string `xml:"FileName"`
	Name     string `xml:"Name"`
	Version  string `xml:"Version"`
	Year     string `xml:"Year"`
}

// machine is a mame -listxml record. Everything but the names is skipped.
type machine struct {
	Name        string `xml:"name,attr"`
	Description string `xml:"description"`
	Year        string `xml:"year"`
}

func parseYear(s string) int {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return year
}

// newXMLDecoder reads UTF-8 or, when a BOM is present, UTF-16. Listings
// redirected from mame.exe on Windows are UTF-16 and say so in their
// prolog, but the transform has already decoded them by then.
func newXMLDecoder(r io.Reader) *xml.Decoder {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	dec := xml.NewDecoder(decoded)
	dec.Strict = false
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		switch strings.ToLower(label) {
		case "utf-16", "utf-16le", "utf-16be", "us-ascii", "ascii":
			return input, nil
		default:
			return nil, fmt.Errorf("unsupported xml encoding: %s", label)
		}
	}
	return dec
}

func readMameXML(ctx context.Context, fs afero.Fs, path string, c *catalog) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open mame metadata: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close mame metadata")
		}
	}()

	dec := newXMLDecoder(f)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to parse mame metadata: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "MameFile":
			var rec mameFile
			if err := dec.DecodeElement(&rec, &se); err != nil {
				return fmt.Errorf("failed to parse mame metadata: %w", err)
			}
			c.addMetadata(game{
				SetName: cleanText(rec.FileName),
				Name:    cleanText(rec.Name),
				Version: cleanText(rec.Version),
				Year:    parseYear(rec.Year),
			})
		case "machine":
			var rec machine
			if err := dec.DecodeElement(&rec, &se); err != nil {
				return fmt.Errorf("failed to parse mame metadata: %w", err)
			}
			c.addMetadata(game{
				SetName:     cleanText(rec.Name),
				Description: cleanText(rec.Description),
				Year:        parseYear(rec.Year),
			})
		default:
			continue
		}

		if c.stats.MameGames%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("mame metadata read cancelled: %w", err)
			}
		}
	}
}
