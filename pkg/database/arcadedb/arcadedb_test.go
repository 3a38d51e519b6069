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

package arcadedb

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ZaparooProject/mister-launcher/pkg/games"
	testsqlmock "github.com/ZaparooProject/mister-launcher/pkg/testing/sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []string{"setname", "description", "name", "version", "year", "path", "is_default"}

func mockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	s := &Store{
		path: "mock.db",
		open: func() (*sql.DB, error) { return db, nil },
	}
	return s, mock
}

func createTestDB(t *testing.T, rows []Row) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arcade.db")
	require.NoError(t, Create(context.Background(), path, rows))
	return NewStore(path)
}

func TestFindArcadeGames_SetNotFound(t *testing.T) {
	t.Parallel()

	s, mock := mockStore(t)
	mock.ExpectPrepare(`where setname = \?`).
		ExpectQuery().
		WithArgs("nothere").
		WillReturnRows(sqlmock.NewRows(testColumns))
	mock.ExpectClose()

	found, err := s.FindArcadeGames(context.Background(), "nothere")

	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindArcadeGames_NullPathReturnsSiblingsOnly(t *testing.T) {
	t.Parallel()

	s, mock := mockStore(t)
	mock.ExpectPrepare(`where setname = \?`).
		ExpectQuery().
		WithArgs("foo").
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow("foo", "Bar (World)", "bar", "(World)", 1981, nil, 1))
	mock.ExpectPrepare(`where name = \? and path is not null`).
		ExpectQuery().
		WithArgs("bar").
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow("foo", "Bar (World)", "bar", "(World)", 1981, "/media/fat/_Arcade/foo.mra", 1).
			AddRow("baz", "Bar (Japan)", "bar", "(Japan)", 1981, "/media/fat/_Arcade/baz.mra", 0))
	mock.ExpectClose()

	found, err := s.FindArcadeGames(context.Background(), "foo")

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "baz", found[0].SetName)
	assert.False(t, found[0].FrontendMatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindArcadeGames_EmptyNameSkipsSiblings(t *testing.T) {
	t.Parallel()

	s, mock := mockStore(t)
	mock.ExpectPrepare(`where setname = \?`).
		ExpectQuery().
		WithArgs("foo").
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow("foo", "Foo", "", nil, nil, "_Arcade/foo.mra", 1))
	mock.ExpectClose()

	found, err := s.FindArcadeGames(context.Background(), "foo")

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, found[0].FrontendMatch)
	assert.Equal(t, "_Arcade/foo.mra", found[0].PathOrEmpty())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindArcadeGames_QueryErrorIsReturned(t *testing.T) {
	t.Parallel()

	s, mock := mockStore(t)
	queryErr := errors.New("disk I/O error")
	mock.ExpectPrepare(`where setname = \?`).
		ExpectQuery().
		WithArgs("foo").
		WillReturnError(queryErr)
	mock.ExpectClose()

	found, err := s.FindArcadeGames(context.Background(), "foo")

	require.Error(t, err)
	require.ErrorIs(t, err, queryErr)
	assert.Nil(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindArcadeGames_SiblingErrorIsReturned(t *testing.T) {
	t.Parallel()

	s, mock := mockStore(t)
	mock.ExpectPrepare(`where setname = \?`).
		ExpectQuery().
		WithArgs("foo").
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow("foo", "Bar (World)", "bar", "(World)", 1981, "_Arcade/foo.mra", 1))
	mock.ExpectPrepare(`where name = \?`).
		WillReturnError(errors.New("prepare failed"))
	mock.ExpectClose()

	_, err := s.FindArcadeGames(context.Background(), "foo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to prepare name lookup")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindArcadeGames_MissingDatabase(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "missing.db"))

	_, err := s.FindArcadeGames(context.Background(), "foo")

	require.ErrorIs(t, err, ErrNotBuilt)
}

func TestFindArcadeGames_RankedEndToEnd(t *testing.T) {
	t.Parallel()

	s := createTestDB(t, []Row{
		{
			SetName:     "foo",
			Description: "Bar (World)",
			Name:        "Bar",
			Version:     "(World)",
			Path:        "roms/foo.zip",
			IsDefault:   true,
		},
		{
			SetName:     "baz",
			Description: "Bar (Japan)",
			Name:        "Bar",
			Version:     "(Japan)",
			Path:        "roms/baz.zip",
		},
		{
			SetName:     "qux",
			Description: "Bar (Bootleg)",
			Name:        "Bar",
			Version:     "(Bootleg)",
		},
	})

	found, err := s.FindArcadeGames(context.Background(), "foo")
	require.NoError(t, err)

	ranked := games.Rank(found)
	require.Len(t, ranked, 2)
	assert.Equal(t, "foo", ranked[0].SetName)
	assert.Equal(t, "(World)", ranked[0].Version)
	assert.True(t, ranked[0].FrontendMatch)
	assert.True(t, ranked[0].IsDefault)
	assert.Equal(t, "baz", ranked[1].SetName)
	assert.Equal(t, "(Japan)", ranked[1].Version)
	assert.False(t, ranked[1].FrontendMatch)
}

func TestFindArcadeGames_NullPathSqlite(t *testing.T) {
	t.Parallel()

	s := createTestDB(t, []Row{
		{SetName: "foo", Description: "Bar (World)", Name: "Bar", Version: "(World)", IsDefault: true},
		{SetName: "baz", Description: "Bar (Japan)", Name: "Bar", Version: "(Japan)", Path: "roms/baz.zip"},
	})

	found, err := s.FindArcadeGames(context.Background(), "foo")

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "baz", found[0].SetName)
	assert.True(t, found[0].Launchable())
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	s := createTestDB(t, []Row{
		{SetName: "pacman", Description: "Pac-Man (Midway)", Name: "pac-man", Version: "(Midway)", Year: 1980},
		{
			SetName:     "puckman",
			Description: "Puck Man (Japan set 1)",
			Name:        "pac-man",
			Version:     "(Japan set 1)",
			Year:        1980,
			Path:        "/media/fat/_Arcade/Puck Man (Japan set 1).mra",
			IsDefault:   true,
		},
	})

	var buf bytes.Buffer
	n, err := s.ExportCSV(context.Background(), &buf)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	out := buf.String()
	assert.Contains(t, out, "setname,description,name,version,path,year,is_default")
	assert.Contains(t, out, "pacman,Pac-Man (Midway),pac-man,(Midway),,1980,false")
	assert.Contains(t, out, "puckman,Puck Man (Japan set 1),pac-man,(Japan set 1),/media/fat/_Arcade/Puck Man (Japan set 1).mra,1980,true")
}

func TestSchemaVersion(t *testing.T) {
	t.Parallel()

	s := createTestDB(t, nil)

	version, err := s.SchemaVersion()

	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestCreate_DuplicateSetFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "arcade.db")
	err := Create(context.Background(), path, []Row{
		{SetName: "foo", Description: "Foo", Name: "foo"},
		{SetName: "foo", Description: "Foo", Name: "foo"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert set foo")
}
