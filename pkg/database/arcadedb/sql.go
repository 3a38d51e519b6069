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
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/ZaparooProject/mister-launcher/pkg/database"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const gameColumns = "setname, description, name, version, year, path, is_default"

func sqlMigrateUp(db *sql.DB) error {
	if err := database.MigrateUp(db, migrationFiles, "migrations"); err != nil {
		return fmt.Errorf("failed to run arcade database migrations: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(s rowScanner) (Row, error) {
	var (
		row       Row
		version   sql.NullString
		year      sql.NullInt64
		path      sql.NullString
		isDefault sql.NullInt64
	)
	err := s.Scan(
		&row.SetName,
		&row.Description,
		&row.Name,
		&version,
		&year,
		&path,
		&isDefault,
	)
	if err != nil {
		return Row{}, err //nolint:wrapcheck // wrapped by callers
	}
	row.Version = version.String
	row.Year = int(year.Int64)
	row.Path = path.String
	row.IsDefault = isDefault.Int64 != 0
	return row, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close sql rows")
	}
}

func sqlFindBySetName(ctx context.Context, db *sql.DB, setName string) (Row, bool, error) {
	if db == nil {
		return Row{}, false, ErrNullSQL
	}

	stmt, err := db.PrepareContext(ctx, `
		select `+gameColumns+`
		from games
		where setname = ?;
	`)
	if err != nil {
		return Row{}, false, fmt.Errorf("failed to prepare set lookup: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close sql statement")
		}
	}()

	row, err := scanRow(stmt.QueryRowContext(ctx, setName))
	if errors.Is(err, sql.ErrNoRows) {
		return Row{}, false, nil
	} else if err != nil {
		return Row{}, false, fmt.Errorf("failed to scan set %s: %w", setName, err)
	}
	return row, true, nil
}

// sqlFindByName returns the sets with the given title which have a path,
// leaving out excludeSet.
func sqlFindByName(ctx context.Context, db *sql.DB, name, excludeSet string) ([]Row, error) {
	if db == nil {
		return nil, ErrNullSQL
	}

	stmt, err := db.PrepareContext(ctx, `
		select `+gameColumns+`
		from games
		where name = ? and path is not null;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare name lookup: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close sql statement")
		}
	}()

	rows, err := stmt.QueryContext(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query name %s: %w", name, err)
	}
	defer closeRows(rows)

	list := make([]Row, 0, 8)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		if row.SetName == excludeSet {
			continue
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game rows: %w", err)
	}
	return list, nil
}

func sqlAllGames(ctx context.Context, db *sql.DB) ([]Row, error) {
	if db == nil {
		return nil, ErrNullSQL
	}

	rows, err := db.QueryContext(ctx, `
		select `+gameColumns+`
		from games
		order by setname;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer closeRows(rows)

	list := make([]Row, 0, 1024)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game rows: %w", err)
	}
	return list, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func sqlInsertGames(ctx context.Context, db *sql.DB, rows []Row) (err error) {
	if db == nil {
		return ErrNullSQL
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warn().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		insert into games(`+gameColumns+`)
		values (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare game insert: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close sql statement")
		}
	}()

	for i := range rows {
		r := &rows[i]
		isDefault := 0
		if r.IsDefault {
			isDefault = 1
		}
		_, err = stmt.ExecContext(ctx,
			r.SetName,
			r.Description,
			r.Name,
			r.Version,
			r.Year,
			nullString(r.Path),
			isDefault,
		)
		if err != nil {
			return fmt.Errorf("failed to insert set %s: %w", r.SetName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit games: %w", err)
	}
	return nil
}
