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

package main

import (
	"errors"
	"fmt"

	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/ZaparooProject/mister-launcher/pkg/database/arcadedb"
	"github.com/spf13/cobra"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and arcade database information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "mister-launcher %s\n", config.AppVersion)

			path := cfg.ArcadeDBPath()
			version, err := arcadedb.NewStore(path).SchemaVersion()
			switch {
			case errors.Is(err, arcadedb.ErrNotBuilt):
				_, _ = fmt.Fprintf(out, "arcade database: not built (%s)\n", path)
			case err != nil:
				return err
			default:
				_, _ = fmt.Fprintf(out, "arcade database: schema %d (%s)\n", version, path)
			}
			return nil
		},
	}
}
