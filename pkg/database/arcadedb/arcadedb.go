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

// Package arcadedb reads and writes the local arcade database: one row per
// MAME set, with the MRA path on the MiSTer for sets that were found there.
package arcadedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/mister-launcher/pkg/database"
	"github.com/ZaparooProject/mister-launcher/pkg/games"
	"github.com/gocarina/gocsv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

var (
	ErrNullSQL  = errors.New("arcade database is not connected")
	ErrNotBuilt = errors.New("arcade database does not exist")
)

// Row is a single record of the games table. Empty Path is stored as NULL.
type Row struct {
	SetName     string `csv:"setname"`
	Description string `csv:"description"`
	Name        string `csv:"name"`
	Version     string `csv:"version"`
	Path        string `csv:"path"`
	Year        int    `csv:"year"`
	IsDefault   bool   `csv:"is_default"`
}

// Candidate converts a row to a launch candidate.
//
//nolint:gocritic // row is a value type throughout the package
func (r Row) Candidate() games.Candidate {
	c := games.Candidate{
		SetName:     r.SetName,
		Name:        r.Name,
		Version:     r.Version,
		Description: r.Description,
		IsDefault:   r.IsDefault,
	}
	if r.Path != "" {
		path := r.Path
		c.Path = &path
	}
	return c
}

// Store looks up arcade sets. A read-only connection is opened for each
// call and closed before it returns, so the file can be rebuilt while the
// launcher is running.
type Store struct {
	open func() (*sql.DB, error)
	path string
}

func NewStore(path string) *Store {
	s := &Store{path: path}
	s.open = s.openReadOnly
	return s
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) openReadOnly() (*sql.DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotBuilt, s.path)
		}
		return nil, fmt.Errorf("failed to stat arcade database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+s.path+database.ReadOnlyParams)
	if err != nil {
		return nil, fmt.Errorf("failed to open arcade database: %w", err)
	}
	return db, nil
}

func (s *Store) withDB(fn func(db *sql.DB) error) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close arcade database")
		}
	}()
	return fn(db)
}

// FindArcadeGames returns the candidates for a MAME set: the set itself if
// it has a path on the MiSTer, followed by every other set sharing its
// title that has a path. An unknown set gives an empty list.
func (s *Store) FindArcadeGames(ctx context.Context, setName string) ([]games.Candidate, error) {
	var found []games.Candidate
	err := s.withDB(func(db *sql.DB) error {
		var err error
		found, err = findArcadeGames(ctx, db, setName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func findArcadeGames(ctx context.Context, db *sql.DB, setName string) ([]games.Candidate, error) {
	row, ok, err := sqlFindBySetName(ctx, db, setName)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug().Msgf("arcade set not found: %s", setName)
		return []games.Candidate{}, nil
	}

	found := make([]games.Candidate, 0, 4)
	if row.Path != "" {
		c := row.Candidate()
		c.FrontendMatch = true
		found = append(found, c)
	}

	if row.Name == "" {
		return found, nil
	}

	siblings, err := sqlFindByName(ctx, db, row.Name, setName)
	if err != nil {
		return nil, err
	}
	for i := range siblings {
		found = append(found, siblings[i].Candidate())
	}

	return found, nil
}

// ExportCSV writes every row of the database as CSV, ordered by set name.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	var rows []Row
	err := s.withDB(func(db *sql.DB) error {
		var err error
		rows, err = sqlAllGames(ctx, db)
		return err
	})
	if err != nil {
		return 0, err
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return 0, fmt.Errorf("failed to write csv: %w", err)
	}
	return len(rows), nil
}

// SchemaVersion reports the migration version of the database file.
func (s *Store) SchemaVersion() (int64, error) {
	var version int64
	err := s.withDB(func(db *sql.DB) error {
		var err error
		version, err = database.SchemaVersion(db)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to read arcade database version: %w", err)
	}
	return version, nil
}

// Create writes a new database at path containing rows. The file must not
// already exist.
func Create(ctx context.Context, path string, rows []Row) error {
	db, err := sql.Open("sqlite3", "file:"+path+database.BuildParams)
	if err != nil {
		return fmt.Errorf("failed to create arcade database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close arcade database")
		}
	}()

	if err := sqlMigrateUp(db); err != nil {
		return err
	}
	return sqlInsertGames(ctx, db, rows)
}
